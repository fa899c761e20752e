package util

import "github.com/gin-gonic/gin"

// ParamsTo binds form or JSON parameters depending on the request's
// content type.
func ParamsTo[T any](c *gin.Context) (T, error) {
	var params T

	if err := c.ShouldBind(&params); err != nil {
		return params, err
	}

	return params, nil
}
