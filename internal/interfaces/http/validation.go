package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/revenue-api/internal/application/dto"
)

// ValidationError errores por campo de una petición.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+":"+f.Rule)
	}
	return "validación: " + strings.Join(parts, ", ")
}

// Validator envoltorio de go-playground/validator con las reglas pesel y krs.
type Validator struct {
	v *validator.Validate
}

// NewValidator registra las reglas propias y usa el nombre json de cada campo en los errores.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "pesel", digitsRule(11))
	mustRegister(v, "krs", digitsRule(10))
	return &Validator{v: v}
}

// mustRegister falla al arrancar si la regla no se puede registrar.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar regla %s: %v", tag, err))
	}
}

// digitsRule exige exactamente n dígitos ASCII.
func digitsRule(n int) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != n {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	}
}

// Struct valida s y devuelve *ValidationError si alguna regla falla.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: make([]dto.FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, dto.FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}

// bind parsea el cuerpo JSON en dst y lo valida.
func bind(c *fiber.Ctx, val *Validator, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody
	}
	return val.Struct(dst)
}

// uuidParam lee un identificador de la ruta o del query y exige formato UUID.
func uuidParam(field, value string) (string, error) {
	if _, err := uuid.Parse(value); err != nil {
		return "", &ValidationError{Fields: []dto.FieldError{{Field: field, Rule: "uuid"}}}
	}
	return value, nil
}

func pathID(c *fiber.Ctx) (string, error) {
	return uuidParam("id", c.Params("id"))
}
