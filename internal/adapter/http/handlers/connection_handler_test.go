package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"broker_quotes/internal/adapter/http/handlers/mocks"
	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newConnectionRouter(h *ConnectionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/brokers/:broker_id/connections", h.Connect)
	r.GET("/v1/brokers/:broker_id/connections", h.ListConnections)
	r.PATCH("/v1/brokers/:broker_id/connections/:connection_id/deactivate", h.Deactivate)
	return r
}

func TestConnectionHandler_Connect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurerConnectionUseCase(ctrl)
		r := newConnectionRouter(NewConnectionHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/brokers/broker-1/connections", bytes.NewBufferString(`{"insurer_name":"Acme","insurer_slug":"acme","supported_products":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success hides credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurerConnectionUseCase(ctrl)
		r := newConnectionRouter(NewConnectionHandler(uc))

		uc.EXPECT().Connect(gomock.Any(), gomock.AssignableToTypeOf(usecase.ConnectInsurerCommand{})).DoAndReturn(
			func(_ any, cmd usecase.ConnectInsurerCommand) (entities.InsurerConnection, error) {
				if cmd.BrokerID != "broker-1" || cmd.Credentials["api_key"] != "top-secret" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.InsurerConnection{
					ID:          "c-1",
					BrokerID:    "broker-1",
					Insurer:     entities.Insurer{Name: "Acme", Slug: "acme", AdapterType: "live_api", SupportedProducts: []entities.ProductType{entities.ProductAuto}},
					Credentials: entities.Credentials(cmd.Credentials),
					Active:      true,
				}, nil
			},
		)

		body := `{"insurer_name":"Acme","insurer_slug":"acme","adapter_type":"live_api","supported_products":["auto"],"credentials":{"api_key":"top-secret","base_url":"https://acme.test"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/brokers/broker-1/connections", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("top-secret")) {
			t.Fatalf("credentials echoed: %s", w.Body.String())
		}
	})
}

func TestConnectionHandler_Deactivate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurerConnectionUseCase(ctrl)
		r := newConnectionRouter(NewConnectionHandler(uc))

		uc.EXPECT().Deactivate(gomock.Any(), "broker-1", "c-9").Return(entities.InsurerConnection{}, usecase.ErrConnectionNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/brokers/broker-1/connections/c-9/deactivate", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInsurerConnectionUseCase(ctrl)
		r := newConnectionRouter(NewConnectionHandler(uc))

		uc.EXPECT().Deactivate(gomock.Any(), "broker-1", "c-1").Return(entities.InsurerConnection{ID: "c-1", BrokerID: "broker-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/v1/brokers/broker-1/connections/c-1/deactivate", nil))
		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte(`"active":false`)) {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestConnectionHandler_ListConnections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInsurerConnectionUseCase(ctrl)
	r := newConnectionRouter(NewConnectionHandler(uc))

	uc.EXPECT().ListByBroker(gomock.Any(), "broker-1").Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/brokers/broker-1/connections", nil))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
