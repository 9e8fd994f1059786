package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// All error responses share the {"error": message} envelope.

func CreateError(statusCode int, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": message})
}

func CreateNotFound(what string, ctx iris.Context) {
	CreateError(iris.StatusNotFound, what+" not found", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal server error", ctx)
}

// HandleValidationErrors maps request binding failures to a 400. When
// the failure comes from validator tags, the offending fields are
// named; anything else is reported as a malformed body.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(errs))
		for _, fieldErr := range errs {
			fields = append(fields, fieldErr.Field()+" ("+fieldErr.Tag()+")")
		}
		CreateError(iris.StatusBadRequest, "Invalid fields: "+strings.Join(fields, ", "), ctx)
		return
	}
	CreateError(iris.StatusBadRequest, "Invalid request body", ctx)
}
