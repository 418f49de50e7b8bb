package handler

import (
	appcontent "github.com/CRT1223/tech13-garage/internal/application/content"
	"github.com/gin-gonic/gin"
)

// ListingRequest holds the ordering and visibility fields of About-page content
type ListingRequest struct {
	DisplayOrder int   `json:"display_order" form:"display_order" binding:"gte=0"`
	IsActive     *bool `json:"is_active" form:"is_active"`
}

func (r ListingRequest) toInput() appcontent.ListingFields {
	return appcontent.ListingFields{DisplayOrder: r.DisplayOrder, IsActive: boolOr(r.IsActive, true)}
}

// TeamMemberRequest is the admin team member form
type TeamMemberRequest struct {
	ListingRequest
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Role         string `json:"role" form:"role" binding:"required,max=100"`
	Description  string `json:"description" form:"description"`
	LinkedInURL  string `json:"linkedin_url" form:"linkedin_url" binding:"omitempty,url"`
	TwitterURL   string `json:"twitter_url" form:"twitter_url" binding:"omitempty,url"`
	InstagramURL string `json:"instagram_url" form:"instagram_url" binding:"omitempty,url"`
}

// CollaborateTeamRequest is the admin partner team form
type CollaborateTeamRequest struct {
	ListingRequest
	TeamName        string `json:"team_name" form:"team_name" binding:"required,max=200"`
	Description     string `json:"description" form:"description"`
	WebsiteURL      string `json:"website_url" form:"website_url" binding:"omitempty,url"`
	ContactEmail    string `json:"contact_email" form:"contact_email" binding:"omitempty,email"`
	ContactPhone    string `json:"contact_phone" form:"contact_phone" binding:"max=20"`
	PartnershipType string `json:"partnership_type" form:"partnership_type" binding:"max=100"`
}

// AwardRequest is the admin award form
type AwardRequest struct {
	ListingRequest
	Title       string `json:"title" form:"title" binding:"required,max=200"`
	Subtitle    string `json:"subtitle" form:"subtitle" binding:"max=200"`
	Year        int    `json:"year" form:"year" binding:"required,gte=1900,lte=2100"`
	Category    string `json:"category" form:"category" binding:"max=100"`
	Description string `json:"description" form:"description"`
}

// ContentHandler handles the admin pages behind the About and Home pages:
// team members, partner teams and awards
type ContentHandler struct {
	BaseHandler
	team   *appcontent.TeamService
	teams  *appcontent.CollaborateTeamService
	awards *appcontent.AwardService
}

// NewContentHandler creates a new content handler
func NewContentHandler(
	team *appcontent.TeamService,
	teams *appcontent.CollaborateTeamService,
	awards *appcontent.AwardService,
) *ContentHandler {
	return &ContentHandler{team: team, teams: teams, awards: awards}
}

// ListTeam lists all team members, inactive ones included
func (h *ContentHandler) ListTeam(c *gin.Context) {
	members, err := h.team.List(c.Request.Context(), false)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, members)
}

func (h *ContentHandler) GetTeamMember(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team member")
	if !ok {
		return
	}
	member, err := h.team.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, member)
}

func (h *ContentHandler) CreateTeamMember(c *gin.Context) {
	var req TeamMemberRequest
	file, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(file)

	member, err := h.team.Create(c.Request.Context(), req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, member)
}

func (h *ContentHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team member")
	if !ok {
		return
	}
	var req TeamMemberRequest
	file, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(file)

	member, err := h.team.Update(c.Request.Context(), id, req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, member)
}

func (h *ContentHandler) UpdateTeamMemberImage(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team member")
	if !ok {
		return
	}
	image, ok := h.requiredFile(c, "image", "No image file provided")
	if !ok {
		return
	}
	defer closeFile(image)

	result, err := h.team.UpdateImage(c.Request.Context(), id, image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Uploaded(c, "Team member image updated successfully", result.ImageURL)
}

func (h *ContentHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team member")
	if !ok {
		return
	}
	if err := h.team.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Team member deleted successfully")
}

// ListCollaborateTeams lists all partner teams, inactive ones included
func (h *ContentHandler) ListCollaborateTeams(c *gin.Context) {
	teams, err := h.teams.List(c.Request.Context(), false)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, teams)
}

func (h *ContentHandler) GetCollaborateTeam(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team")
	if !ok {
		return
	}
	team, err := h.teams.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, team)
}

func (h *ContentHandler) CreateCollaborateTeam(c *gin.Context) {
	var req CollaborateTeamRequest
	file, ok := h.bindWithFile(c, &req, "logo")
	if !ok {
		return
	}
	defer closeFile(file)

	team, err := h.teams.Create(c.Request.Context(), req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, team)
}

func (h *ContentHandler) UpdateCollaborateTeam(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team")
	if !ok {
		return
	}
	var req CollaborateTeamRequest
	file, ok := h.bindWithFile(c, &req, "logo")
	if !ok {
		return
	}
	defer closeFile(file)

	team, err := h.teams.Update(c.Request.Context(), id, req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, team)
}

func (h *ContentHandler) UpdateCollaborateTeamLogo(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team")
	if !ok {
		return
	}
	logo, ok := h.requiredFile(c, "logo", "No logo file provided")
	if !ok {
		return
	}
	defer closeFile(logo)

	result, err := h.teams.UpdateLogo(c.Request.Context(), id, logo)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Uploaded(c, "Logo updated successfully", result.ImageURL)
}

func (h *ContentHandler) DeleteCollaborateTeam(c *gin.Context) {
	id, ok := h.parseID(c, "id", "team")
	if !ok {
		return
	}
	if err := h.teams.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Collaborate team deleted successfully")
}

// ListAwards lists all awards, inactive ones included
func (h *ContentHandler) ListAwards(c *gin.Context) {
	awards, err := h.awards.List(c.Request.Context(), false)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, awards)
}

func (h *ContentHandler) GetAward(c *gin.Context) {
	id, ok := h.parseID(c, "id", "award")
	if !ok {
		return
	}
	award, err := h.awards.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, award)
}

func (h *ContentHandler) CreateAward(c *gin.Context) {
	var req AwardRequest
	file, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(file)

	award, err := h.awards.Create(c.Request.Context(), req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, award)
}

func (h *ContentHandler) UpdateAward(c *gin.Context) {
	id, ok := h.parseID(c, "id", "award")
	if !ok {
		return
	}
	var req AwardRequest
	file, ok := h.bindWithFile(c, &req, "image")
	if !ok {
		return
	}
	defer closeFile(file)

	award, err := h.awards.Update(c.Request.Context(), id, req.toInput(), file)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, award)
}

func (h *ContentHandler) UpdateAwardImage(c *gin.Context) {
	id, ok := h.parseID(c, "id", "award")
	if !ok {
		return
	}
	image, ok := h.requiredFile(c, "image", "No image file provided")
	if !ok {
		return
	}
	defer closeFile(image)

	result, err := h.awards.UpdateImage(c.Request.Context(), id, image)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Uploaded(c, "Award image updated successfully", result.ImageURL)
}

func (h *ContentHandler) DeleteAward(c *gin.Context) {
	id, ok := h.parseID(c, "id", "award")
	if !ok {
		return
	}
	if err := h.awards.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Deleted(c, "Award deleted successfully")
}

func (r TeamMemberRequest) toInput() appcontent.TeamMemberRequest {
	return appcontent.TeamMemberRequest{
		ListingFields: r.ListingRequest.toInput(),
		Name:          r.Name,
		Role:          r.Role,
		Description:   r.Description,
		LinkedInURL:   r.LinkedInURL,
		TwitterURL:    r.TwitterURL,
		InstagramURL:  r.InstagramURL,
	}
}

func (r CollaborateTeamRequest) toInput() appcontent.CollaborateTeamRequest {
	return appcontent.CollaborateTeamRequest{
		ListingFields:   r.ListingRequest.toInput(),
		TeamName:        r.TeamName,
		Description:     r.Description,
		WebsiteURL:      r.WebsiteURL,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		PartnershipType: r.PartnershipType,
	}
}

func (r AwardRequest) toInput() appcontent.AwardRequest {
	return appcontent.AwardRequest{
		ListingFields: r.ListingRequest.toInput(),
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Year:          r.Year,
		Category:      r.Category,
		Description:   r.Description,
	}
}
