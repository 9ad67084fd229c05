package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lsbets/internal/domain"
	"lsbets/internal/service"
	"lsbets/pkg/gateway"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runWriteError(err error) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	writeError(c, err)
	return w
}

func TestWriteErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"invalid input", fmt.Errorf("%w: bet amount must be positive", domain.ErrInvalidInput), http.StatusBadRequest, ""},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, "Insufficient funds"},
		{"not found", domain.ErrNotFound, http.StatusNotFound, "Not found"},
		{"already processed", domain.ErrAlreadyProcessed, http.StatusConflict, "Request has already been processed"},
		{"credit after payment", fmt.Errorf("%w: db gone", service.ErrCreditAfterPayment), http.StatusInternalServerError,
			"Payment was processed but there was an error updating your balance. Contact support."},
		{"gateway payment failed", &gateway.Error{Reason: gateway.ReasonPaymentFailed}, http.StatusBadGateway, "Payment failed"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, "Internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := runWriteError(tt.err)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response not JSON: %v", err)
			}
			if body.Success {
				t.Error("success = true on error response")
			}
			if tt.wantMsg != "" && body.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}

// The internal failure detail never leaks; the raw gateway payload always
// does.
func TestWriteErrorGatewayRawPassthrough(t *testing.T) {
	w := runWriteError(&gateway.Error{
		Reason: gateway.ReasonPaymentFailed,
		Raw:    []byte(`{"message":"token_expired","token":"tok_1"}`),
	})
	var body struct {
		Response map[string]any `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body.Response["message"] != "token_expired" {
		t.Errorf("raw gateway payload not passed through: %+v", body.Response)
	}
}

func TestWriteErrorGatewayNonJSONRaw(t *testing.T) {
	w := runWriteError(&gateway.Error{
		Reason: gateway.ReasonInvalidResponse,
		Raw:    []byte("<html>maintenance</html>"),
	})
	var body struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body.Response != "<html>maintenance</html>" {
		t.Errorf("raw body = %q", body.Response)
	}
}

func TestWriteErrorInternalDetailHidden(t *testing.T) {
	w := runWriteError(errors.New("pq: connection refused at 10.1.2.3"))
	if got := w.Body.String(); got == "" || strings.Contains(got, "10.1.2.3") {
		t.Errorf("internal detail leaked: %s", got)
	}
}
