package utils

import (
	"luxe-estates-server/models"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// AgentOnlyMiddleware lets agents and admins through. Property and
// blog mutations are gated here, never inside the store.
func AgentOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != models.RoleAgent && claims.Role != models.RoleAdmin {
		CreateError(iris.StatusForbidden, "Agent access required", ctx)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

func AdminOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != models.RoleAdmin {
		CreateError(iris.StatusForbidden, "Admin access required", ctx)
		return
	}
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}
