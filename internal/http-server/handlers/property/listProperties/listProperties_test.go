package listProperties

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeRental/internal/http-server/handlers/property/listProperties/mocks"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListPropertiesHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		properties     []models.Property
		listErr        error
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "Success",
			properties: []models.Property{
				{ID: "p-2", Title: "Cabin"},
				{ID: "p-1", Title: "Loft"},
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "Empty catalog",
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Storage failure",
			listErr:        errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewPropertyLister(t)
			lister.On("List", mock.Anything).Return(tc.properties, tc.listErr)

			req := httptest.NewRequest(http.MethodGet, "/properties", nil)
			rr := httptest.NewRecorder()

			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.listErr != nil {
				assert.JSONEq(t, `{"status":"Error","error":"failed to get properties"}`, rr.Body.String())
				return
			}

			var resp PropertiesResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.NotNil(t, resp.Properties)
			assert.Len(t, resp.Properties, tc.expectedCount)
		})
	}
}
