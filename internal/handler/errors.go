package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"lsbets/internal/domain"
	"lsbets/internal/service"
	"lsbets/pkg/gateway"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors to HTTP responses. Typed failures get
// specific statuses and messages; anything unrecognized is a 500 with a
// generic body so internals never leak.
func writeError(c *gin.Context, err error) {
	var gwErr *gateway.Error
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Insufficient funds"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	case errors.Is(err, domain.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Request has already been processed"})
	case errors.Is(err, service.ErrCreditAfterPayment):
		// Real money arrived and is not credited yet. Distinct message so
		// support can find these.
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Payment was processed but there was an error updating your balance. Contact support.",
		})
	case errors.As(err, &gwErr):
		body := gin.H{"success": false, "message": gatewayMessage(gwErr)}
		if len(gwErr.Raw) > 0 {
			body["response"] = rawPayload(gwErr.Raw)
		}
		c.JSON(http.StatusBadGateway, body)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal error"})
	}
}

func gatewayMessage(err *gateway.Error) string {
	switch err.Reason {
	case gateway.ReasonPaymentFailed:
		return "Payment failed"
	case gateway.ReasonInvalidResponse:
		return "Payment gateway returned an invalid response format"
	default:
		return "Payment gateway error"
	}
}

// rawPayload passes the gateway body through as JSON when it is JSON, else
// as a plain string.
func rawPayload(raw []byte) any {
	if json.Valid(raw) {
		return json.RawMessage(raw)
	}
	return string(raw)
}
