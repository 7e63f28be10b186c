package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Setup registers a tag name function on gin's binding validator so
// validation errors report the JSON field names the clients sent, not
// the Go struct field names. Call once at startup.
func Setup() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Message translates a binding error into the user-facing Spanish
// message naming the offending field. Every entity shares this routine;
// the per-entity schema lives in the DTO binding tags.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" {
			return fmt.Sprintf("El campo '%s' no tiene el formato correcto.", typeErr.Field)
		}
		return "Algunos campos numéricos no tienen el formato correcto."
	}

	return "Formato de la solicitud inválido."
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	// Line-item fields are reported per product, like the original did.
	if strings.Contains(fe.Namespace(), "productos[") {
		return fmt.Sprintf("Cada producto debe tener un '%s' válido.", field)
	}

	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("El campo '%s' debe ser mayor que %s.", field, fe.Param())
	case "min":
		return fmt.Sprintf("El campo '%s' es obligatorio y debe ser una lista de productos.", field)
	}

	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	switch kind {
	case reflect.String:
		return fmt.Sprintf("El campo '%s' es obligatorio y debe ser un string.", field)
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("El campo '%s' es obligatorio y debe ser un número.", field)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("El campo '%s' es obligatorio y debe ser un entero.", field)
	case reflect.Slice:
		return fmt.Sprintf("El campo '%s' es obligatorio y debe ser una lista de productos.", field)
	default:
		return fmt.Sprintf("El campo '%s' es obligatorio.", field)
	}
}
