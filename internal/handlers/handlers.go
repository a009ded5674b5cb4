package handlers

import (
	"strings"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/middleware"
	"event-admin-backend/internal/services"
	"event-admin-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authSvc     *services.AuthService
	eventSvc    *services.EventService
	venueSvc    *services.VenueService
	contentSvc  *services.ContentService
	categorySvc *services.CategoryService
	otpSvc      *services.OtpService
	appSvc      *services.AppService
	cfg         *config.Config
}

func NewHandler(
	authSvc *services.AuthService,
	eventSvc *services.EventService,
	venueSvc *services.VenueService,
	contentSvc *services.ContentService,
	categorySvc *services.CategoryService,
	otpSvc *services.OtpService,
	appSvc *services.AppService,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authSvc:     authSvc,
		eventSvc:    eventSvc,
		venueSvc:    venueSvc,
		contentSvc:  contentSvc,
		categorySvc: categorySvc,
		otpSvc:      otpSvc,
		appSvc:      appSvc,
		cfg:         cfg,
	}
}

func (h *Handler) RegisterRoutes(router fiber.Router) {
	// First-run setup
	setup := router.Group("/setup")
	{
		setup.Get("/", h.SetupStatus)
		setup.Post("/create-super-admin", middleware.ValidateBody(&createAdminRequest{}), h.CreateSuperAdmin)
	}

	// Admin session
	router.Post("/auth/login", middleware.ValidateBody(&loginRequest{}), h.Login)

	// Mobile client (unauthenticated aside from event/user validation)
	app := router.Group("/app")
	{
		app.Post("/auth/login", middleware.ValidateBody(&services.RequestOTPInput{}), h.AppLogin)
		app.Post("/auth/verify-otp", middleware.ValidateBody(&services.VerifyOTPInput{}), h.AppVerifyOtp)
		app.Get("/profile", h.AppProfile)
		app.Post("/profile/edit", h.AppEditProfile)
		app.Get("/venue/details", h.AppVenueDetails)
		app.Post("/venue/details", h.AppVenueDetails)
		app.Post("/info", h.AppInfo)
		app.Get("/events/get-login-code", h.AppGetLoginCode)
	}

	// Everything below requires a live admin session
	protected := router.Group("", middleware.SessionMiddleware(h.cfg, h.authSvc))
	{
		protected.Get("/auth/me", h.Me)
		protected.Post("/auth/logout", h.Logout)

		admins := protected.Group("/admins")
		{
			admins.Get("/", h.ListAdmins)
			admins.Post("/", middleware.ValidateBody(&createAdminRequest{}), h.CreateAdmin)
			admins.Delete("/:id", h.DeleteAdmin)
		}

		events := protected.Group("/events")
		{
			events.Get("/", h.ListEvents)
			events.Post("/", h.CreateEvent)
			events.Get("/:id", h.GetEvent)
			events.Put("/:id", h.UpdateEvent)
			events.Delete("/:id", h.DeleteEvent)
			events.Post("/:id/toggle-enable", h.ToggleEventEnable)
			events.Post("/:id/assign", h.AssignAdmin)
			events.Delete("/:id/assign", h.UnassignAdmin)
			events.Get("/:id/qr", h.EventLoginQR)

			events.Get("/:id/content", h.GetEventContent)
			events.Get("/:id/days", h.ListEventDays)
			events.Post("/:id/days", h.AddEventDay)
			events.Delete("/:id/days/:item_id", h.RemoveEventDay)
			events.Get("/:id/sessions", h.ListEventSessions)
			events.Post("/:id/sessions", h.AddEventSession)
			events.Delete("/:id/sessions/:item_id", h.RemoveEventSession)
			events.Post("/:id/content/intro", h.AddEventIntro)
			events.Delete("/:id/content/intro/:item_id", h.RemoveEventIntro)
			events.Post("/:id/content/explore", h.AddEventExplore)
			events.Delete("/:id/content/explore/:item_id", h.RemoveEventExplore)
			events.Post("/:id/content/happening", h.AddEventHappening)
			events.Delete("/:id/content/happening/:item_id", h.RemoveEventHappening)
		}

		venues := protected.Group("/venues")
		{
			venues.Get("/", h.ListVenues)
			venues.Post("/", h.CreateVenue)
			venues.Get("/:id", h.GetVenue)
			venues.Put("/:id", h.UpdateVenue)
			venues.Delete("/:id", h.DeleteVenue)
			venues.Post("/:id/facilities", h.AddVenueFacility)
			venues.Delete("/:id/facilities/:item_id", h.RemoveVenueFacility)
			venues.Post("/:id/contacts", h.AddVenueContact)
			venues.Delete("/:id/contacts/:item_id", h.RemoveVenueContact)
			venues.Post("/:id/photos", h.AddVenuePhoto)
			venues.Delete("/:id/photos/:item_id", h.RemoveVenuePhoto)
		}

		categories := protected.Group("/categories")
		{
			categories.Get("/", h.ListCategories)
			categories.Post("/", h.CreateCategory)
			categories.Get("/:id", h.GetCategory)
			categories.Put("/:id", h.UpdateCategory)
			categories.Delete("/:id", h.DeleteCategory)
		}

		protected.Post("/upload/image", h.UploadImage)
		protected.Delete("/upload/image", h.DeleteImage)
	}
}

// ErrorHandler converts uncaught failures into the admin envelope; anything
// unrecognized is a generic 500 with the cause logged server-side only.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
	}

	return utils.Error(c, message, code)
}

// respondErr maps a service error onto the admin envelope.
func respondErr(c *fiber.Ctx, err error) error {
	code := services.HTTPStatus(err)
	if code == fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		return utils.Error(c, "Internal Server Error", code)
	}
	return utils.Error(c, errMessage(err), code)
}

// appRespondErr is respondErr for the mobile envelope.
func appRespondErr(c *fiber.Ctx, err error) error {
	code := services.HTTPStatus(err)
	if code == fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		return utils.AppError(c, "Internal Server Error", code)
	}
	return utils.AppError(c, errMessage(err), code)
}

// errMessage strips the sentinel prefix so clients see only the detail.
func errMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		services.ErrUnauthenticated,
		services.ErrForbidden,
		services.ErrNotFound,
		services.ErrBadRequest,
	} {
		if prefix := sentinel.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return msg
}
