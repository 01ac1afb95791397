package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sjperalta/fintera-amortization/internal/validation"
)

const (
	// OperatorHeader names the person acting on the request. Authentication
	// happens upstream; the value is only recorded in audit columns.
	OperatorHeader  = "X-Operator-ID"
	DefaultOperator = "system"

	operatorKey = "operator"
)

// Operator stores the sanitised operator identity in the Gin context
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		operator := validation.SanitizeText(c.GetHeader(OperatorHeader))
		if len(operator) > 100 {
			operator = operator[:100]
		}
		if operator == "" {
			operator = DefaultOperator
		}
		c.Set(operatorKey, operator)
		c.Next()
	}
}

// GetOperator extracts the operator identity from the Gin context
func GetOperator(c *gin.Context) string {
	if operator := c.GetString(operatorKey); operator != "" {
		return operator
	}
	return DefaultOperator
}
