package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"societyhub_backend/internals/features/community/events/dto"
	"societyhub_backend/internals/features/community/events/model"
	helper "societyhub_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

var validateEvent = validator.New()

// CreateEvent publishes a society event. Events are immutable once posted.
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Session is missing a user")
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
	}

	event := model.EventModel{
		EventTitle:       req.Title,
		EventDescription: req.Description,
		EventVenue:       req.Venue,
		EventDate:        date,
		EventCreatedBy:   userID,
	}
	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save event")
	}

	return helper.JsonCreated(c, "Event published", dto.ToEventDTO(event))
}

// GetUpcomingEvents lists events from today onward, soonest first.
func (ctrl *EventController) GetUpcomingEvents(c *fiber.Ctx) error {
	today := time.Now().Truncate(24 * time.Hour)

	var rows []model.EventModel
	if err := ctrl.DB.
		Where("event_date >= ?", today).
		Order("event_date ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	out := make([]dto.EventDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToEventDTO(r))
	}
	return helper.JsonOK(c, "ok", out)
}

// GetAllEvents lists every event including past ones, newest date first.
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []model.EventModel
	if err := ctrl.DB.
		Order("event_date DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}

	out := make([]dto.EventDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToEventDTO(r))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
