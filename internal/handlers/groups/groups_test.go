package groups

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/dto"
	"github.com/mkarenzi/ikimina/internal/service/groupservice"
	"github.com/mkarenzi/ikimina/pkg/auth"
	"github.com/mkarenzi/ikimina/pkg/utils"
)

func NewMock(t *testing.T) (*GroupHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target string, body []byte, userID int, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func testGroup() *domain.Group {
	return &domain.Group{
		ID:              1,
		OrganizerID:     100,
		Name:            "Umurenge Savings",
		JoinCode:        "79927398713",
		CycleDays:       30,
		CurrentCycle:    3,
		CycleStartDate:  time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		GroupType:       domain.GroupTypeFullPlatform,
		DefaultCurrency: "RWF",
		Status:          "ACTIVE",
	}
}

func TestCreateGroupHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"name":"Umurenge Savings","cycle_days":30,"group_type":"FULL_PLATFORM","default_currency":"RWF"}`,
			prepareMock: func() {
				service.EXPECT().
					CreateGroup(gomock.Any(), 100, "Umurenge Savings", 30, "FULL_PLATFORM", "RWF").
					Return(testGroup(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing name",
			body:          `{"cycle_days":30}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "Name and positive cycle_days are required",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/groups", []byte(tt.body), 100, nil)
			rr := httptest.NewRecorder()

			handler.CreateGroup(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetGroupHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Found", func(t *testing.T) {
		service.EXPECT().GetGroup(gomock.Any(), 1).Return(testGroup(), nil)

		req := newRequest("GET", "/api/groups/1", nil, 100, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.GetGroup(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.GroupResponseDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Umurenge Savings", resp.Name)
		assert.Equal(t, 3, resp.CurrentCycle)
		assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), resp.CycleEndDate)
	})

	t.Run("Not found", func(t *testing.T) {
		service.EXPECT().GetGroup(gomock.Any(), 9).Return(nil, groupservice.ErrGroupNotFound)

		req := newRequest("GET", "/api/groups/9", nil, 100, map[string]string{"groupID": "9"})
		rr := httptest.NewRecorder()
		handler.GetGroup(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		req := newRequest("GET", "/api/groups/abc", nil, 100, map[string]string{"groupID": "abc"})
		rr := httptest.NewRecorder()
		handler.GetGroup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetGroupsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Has groups", func(t *testing.T) {
		service.EXPECT().GetGroupsForUser(gomock.Any(), 100).Return([]domain.Group{*testGroup()}, nil)

		req := newRequest("GET", "/api/groups", nil, 100, nil)
		rr := httptest.NewRecorder()
		handler.GetGroups(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("No groups", func(t *testing.T) {
		service.EXPECT().GetGroupsForUser(gomock.Any(), 100).Return(nil, nil)

		req := newRequest("GET", "/api/groups", nil, 100, nil)
		rr := httptest.NewRecorder()
		handler.GetGroups(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestJoinGroupHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful join",
			body: `{"join_code":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().JoinGroup(gomock.Any(), 7, "79927398713").Return(&domain.Member{
					ID:       55,
					GroupID:  1,
					UserID:   7,
					FullName: "alice",
					IsActive: true,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Invalid code",
			body: `{"join_code":"123"}`,
			prepareMock: func() {
				service.EXPECT().JoinGroup(gomock.Any(), 7, "123").Return(nil, groupservice.ErrInvalidJoinCode)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Already a member",
			body: `{"join_code":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().JoinGroup(gomock.Any(), 7, "79927398713").Return(nil, groupservice.ErrAlreadyMember)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/groups/join", []byte(tt.body), 7, nil)
			rr := httptest.NewRecorder()
			handler.JoinGroup(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddMemberHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful add", func(t *testing.T) {
		service.EXPECT().
			AddMember(gomock.Any(), 1, 100, "Jeanette", "+250788000003").
			Return(&domain.Member{ID: 21, GroupID: 1, FullName: "Jeanette", IsActive: true}, nil)

		body := `{"full_name":"Jeanette","phone":"+250788000003"}`
		req := newRequest("POST", "/api/groups/1/members", []byte(body), 100, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.AddMember(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Wrong group type", func(t *testing.T) {
		service.EXPECT().
			AddMember(gomock.Any(), 1, 100, "Jeanette", "").
			Return(nil, groupservice.ErrWrongGroupType)

		body := `{"full_name":"Jeanette"}`
		req := newRequest("POST", "/api/groups/1/members", []byte(body), 100, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.AddMember(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("Not organizer", func(t *testing.T) {
		service.EXPECT().
			AddMember(gomock.Any(), 1, 7, "Jeanette", "").
			Return(nil, groupservice.ErrNotOrganizer)

		body := `{"full_name":"Jeanette"}`
		req := newRequest("POST", "/api/groups/1/members", []byte(body), 7, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.AddMember(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestDeactivateMemberHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful deactivate", func(t *testing.T) {
		service.EXPECT().DeactivateMember(gomock.Any(), 1, 21, 100).Return(nil)

		req := newRequest("DELETE", "/api/groups/1/members/21", nil, 100, map[string]string{"groupID": "1", "memberID": "21"})
		rr := httptest.NewRecorder()
		handler.DeactivateMember(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Member not found", func(t *testing.T) {
		service.EXPECT().DeactivateMember(gomock.Any(), 1, 99, 100).Return(groupservice.ErrMemberNotFound)

		req := newRequest("DELETE", "/api/groups/1/members/99", nil, 100, map[string]string{"groupID": "1", "memberID": "99"})
		rr := httptest.NewRecorder()
		handler.DeactivateMember(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestJoinCodeQRHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns png", func(t *testing.T) {
		png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
		service.EXPECT().JoinCodeQR(gomock.Any(), 1, 100).Return(png, nil)

		req := newRequest("GET", "/api/groups/1/qr", nil, 100, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.JoinCodeQR(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Equal(t, png, rr.Body.Bytes())
	})

	t.Run("Not organizer", func(t *testing.T) {
		service.EXPECT().JoinCodeQR(gomock.Any(), 1, 7).Return(nil, groupservice.ErrNotOrganizer)

		req := newRequest("GET", "/api/groups/1/qr", nil, 7, map[string]string{"groupID": "1"})
		rr := httptest.NewRecorder()
		handler.JoinCodeQR(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
