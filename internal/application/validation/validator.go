package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/logistica-api/internal/domain"
	"github.com/jhoicas/logistica-api/internal/domain/entity"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// get construye el validador una sola vez: nombres de campo según la etiqueta json
// y regla estructural de VariantKey (opción obligatoria si hay característica).
func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterStructValidation(func(sl validator.StructLevel) {
			k := sl.Current().Interface().(entity.VariantKey)
			if k.ItemFeatureID != "" && k.FeatureOptionID == "" {
				sl.ReportError(k.FeatureOptionID, "feature_option_id", "FeatureOptionID", "required_with_feature", "")
			}
		}, entity.VariantKey{})
		instance = v
	})
	return instance
}

// Struct valida in y devuelve un error que envuelve domain.ErrValidation con el detalle por campo.
func Struct(in any) error {
	err := get().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.Invalid(err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fieldPath(fe), message(fe)))
	}
	return domain.Invalid(strings.Join(msgs, "; "))
}

// fieldPath quita el nombre del struct raíz del namespace (Input.items[0].quantity -> items[0].quantity).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "uuid":
		return "debe ser un UUID"
	case "min", "gte":
		return "debe ser >= " + fe.Param()
	case "gt":
		return "debe ser > " + fe.Param()
	case "ne":
		return "no puede ser " + fe.Param()
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "dive":
		return "elemento inválido"
	case "required_with_feature":
		return "es obligatorio cuando hay item_feature_id"
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

// ID valida un identificador suelto (parámetro de ruta, referencia) como UUID obligatorio.
func ID(name, id string) error {
	if err := get().Var(id, "required,uuid"); err != nil {
		return domain.Invalid(name + ": debe ser un UUID")
	}
	return nil
}
