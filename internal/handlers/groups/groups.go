package groups

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mkarenzi/ikimina/internal/domain"
	"github.com/mkarenzi/ikimina/internal/dto"
	"github.com/mkarenzi/ikimina/internal/service/groupservice"
	"github.com/mkarenzi/ikimina/pkg/auth"
	"github.com/mkarenzi/ikimina/pkg/utils"
)

//go:generate mockgen -source=groups.go -destination=groups_mock.go -package=groups
type Service interface {
	CreateGroup(ctx context.Context, userID int, name string, cycleDays int, groupType, defaultCurrency string) (*domain.Group, error)
	GetGroup(ctx context.Context, groupID int) (*domain.Group, error)
	GetGroupsForUser(ctx context.Context, userID int) ([]domain.Group, error)
	UpdateGroup(ctx context.Context, groupID, userID int, name *string, cycleDays *int) (*domain.Group, error)
	JoinGroup(ctx context.Context, userID int, code string) (*domain.Member, error)
	AddMember(ctx context.Context, groupID, userID int, fullName, phone string) (*domain.Member, error)
	GetMembers(ctx context.Context, groupID int, includeInactive bool) ([]domain.Member, error)
	DeactivateMember(ctx context.Context, groupID, memberID, userID int) error
	JoinCodeQR(ctx context.Context, groupID, userID int) ([]byte, error)
}

type GroupHandler struct {
	groupService Service
}

func New(groupService Service) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup godoc
//
//	@Summary		Create a savings group
//	@Description	Create a group with a server-generated join code; the caller becomes the organizer
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGroupRequestDTO	true	"Group definition"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.GroupResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups [post]
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.CycleDays <= 0 {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Name and positive cycle_days are required")
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), userID, req.Name, req.CycleDays, req.GroupType, req.DefaultCurrency)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toGroupDTO(group))
}

// GetGroups godoc
//
//	@Summary		List the caller's groups
//	@Description	Groups the user organizes or belongs to
//	@Tags			Groups
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.GroupResponseDTO
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups [get]
func (h *GroupHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	groupList, err := h.groupService.GetGroupsForUser(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(groupList) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.GroupResponseDTO, 0, len(groupList))
	for i := range groupList {
		response = append(response, toGroupDTO(&groupList[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGroup godoc
//
//	@Summary		Get one group
//	@Tags			Groups
//	@Produce		json
//	@Param			groupID	path	int	true	"Group ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GroupResponseDTO
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID} [get]
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	group, err := h.groupService.GetGroup(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGroupDTO(group))
}

// UpdateGroup godoc
//
//	@Summary		Update group settings
//	@Description	Organizer-only rename or cycle length change
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path	int							true	"Group ID"
//	@Param			request	body	dto.UpdateGroupRequestDTO	true	"Fields to update"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GroupResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID} [patch]
func (h *GroupHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	group, err := h.groupService.UpdateGroup(r.Context(), groupID, userID, req.Name, req.CycleDays)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toGroupDTO(group))
}

// JoinGroup godoc
//
//	@Summary		Join a group by code
//	@Description	Self-service enrollment for full-platform groups
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.JoinGroupRequestDTO	true	"Join code"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"No group with this code"
//	@Failure		409	{object}	utils.Response	"Already a member"
//	@Failure		422	{object}	utils.Response	"Invalid join code"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/join [post]
func (h *GroupHandler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.JoinGroupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	member, err := h.groupService.JoinGroup(r.Context(), userID, req.JoinCode)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(member))
}

// AddMember godoc
//
//	@Summary		Add a member by name
//	@Description	Organizer-entered member for organizer-only groups; no user account involved
//	@Tags			Groups
//	@Accept			json
//	@Produce		json
//	@Param			groupID	path	int						true	"Group ID"
//	@Param			request	body	dto.AddMemberRequestDTO	true	"Member details"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.MemberResponseDTO
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		422	{object}	utils.Response	"Wrong group type"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members [post]
func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	var req dto.AddMemberRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "full_name is required")
		return
	}

	member, err := h.groupService.AddMember(r.Context(), groupID, userID, req.FullName, req.Phone)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toMemberDTO(member))
}

// GetMembers godoc
//
//	@Summary		List group members
//	@Tags			Groups
//	@Produce		json
//	@Param			groupID				path	int		true	"Group ID"
//	@Param			include_inactive	query	bool	false	"Include deactivated members"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.MemberResponseDTO
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members [get]
func (h *GroupHandler) GetMembers(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	members, err := h.groupService.GetMembers(r.Context(), groupID, includeInactive)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.MemberResponseDTO, 0, len(members))
	for i := range members {
		response = append(response, toMemberDTO(&members[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// DeactivateMember godoc
//
//	@Summary		Deactivate a member
//	@Description	Soft delete; contributions and past payouts are kept
//	@Tags			Groups
//	@Produce		json
//	@Param			groupID		path	int	true	"Group ID"
//	@Param			memberID	path	int	true	"Member ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Member not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/members/{memberID} [delete]
func (h *GroupHandler) DeactivateMember(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}

	if err := h.groupService.DeactivateMember(r.Context(), groupID, memberID, userID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Member deactivated"})
}

// JoinCodeQR godoc
//
//	@Summary		Join code as QR image
//	@Description	PNG the organizer can print or share
//	@Tags			Groups
//	@Produce		png
//	@Param			groupID	path	int	true	"Group ID"
//	@Security		BearerAuth
//	@Success		200	{string}	binary			"PNG image"
//	@Failure		403	{object}	utils.Response	"Caller is not the organizer"
//	@Failure		404	{object}	utils.Response	"Group not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/groups/{groupID}/joincode/qr [get]
func (h *GroupHandler) JoinCodeQR(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	groupID, ok := pathID(w, r, "groupID")
	if !ok {
		return
	}

	png, err := h.groupService.JoinCodeQR(r.Context(), groupID, userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, groupservice.ErrGroupNotFound),
		errors.Is(err, groupservice.ErrMemberNotFound),
		errors.Is(err, groupservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, groupservice.ErrNotOrganizer):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, groupservice.ErrAlreadyMember):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, groupservice.ErrInvalidJoinCode),
		errors.Is(err, groupservice.ErrWrongGroupType):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toGroupDTO(group *domain.Group) dto.GroupResponseDTO {
	start, end := group.CycleWindow()
	return dto.GroupResponseDTO{
		ID:              group.ID,
		Name:            group.Name,
		JoinCode:        group.JoinCode,
		CycleDays:       group.CycleDays,
		CurrentCycle:    group.CurrentCycle,
		CycleStartDate:  start,
		CycleEndDate:    end,
		GroupType:       group.GroupType,
		DefaultCurrency: group.DefaultCurrency,
		Status:          group.Status,
	}
}

func toMemberDTO(member *domain.Member) dto.MemberResponseDTO {
	return dto.MemberResponseDTO{
		ID:       member.ID,
		FullName: member.FullName,
		Phone:    member.Phone,
		IsActive: member.IsActive,
		JoinedAt: member.JoinedAt,
	}
}
