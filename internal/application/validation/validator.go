// Package validation valida los registros en la frontera del productor (registro, edición,
// importación) con go-playground/validator y etiquetas propias del dominio.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// V devuelve la instancia compartida del validador (segura para uso concurrente).
func V() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		_ = validate.RegisterValidation("assetcategory", func(fl validator.FieldLevel) bool {
			return entity.AssetCategory(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("assetstatus", func(fl validator.FieldLevel) bool {
			return entity.AssetStatus(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("maintenancetype", func(fl validator.FieldLevel) bool {
			return entity.MaintenanceType(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("maintenancestatus", func(fl validator.FieldLevel) bool {
			return entity.MaintenanceStatus(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// Struct valida v y traduce los errores a *domain.ValidationError.
func Struct(v any) error {
	err := V().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
