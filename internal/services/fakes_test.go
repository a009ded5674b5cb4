package services

import (
	"sort"
	"time"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. Each fake returns
// gorm.ErrRecordNotFound on a miss, matching what the postgres-backed
// implementations surface.

func newTestRepository() *repositories.Repository {
	admins := &fakeAdminRepo{admins: map[uuid.UUID]models.Admin{}}
	events := &fakeEventRepo{
		events:      map[uuid.UUID]models.Event{},
		assignments: map[uuid.UUID]map[uuid.UUID]bool{},
		admins:      admins,
	}
	return &repositories.Repository{
		AdminRepo:    admins,
		SessionRepo:  &fakeSessionRepo{sessions: map[uuid.UUID]models.AdminSession{}},
		EventRepo:    events,
		VenueRepo:    &fakeVenueRepo{venues: map[uuid.UUID]models.Venue{}},
		ContentRepo:  &fakeContentRepo{},
		CategoryRepo: &fakeCategoryRepo{categories: map[uuid.UUID]models.EventCategory{}},
		AppRepo: &fakeAppRepo{
			otps:    map[otpKey]models.AppOtp{},
			users:   map[uuid.UUID]models.AppUser{},
			devices: map[deviceKey]models.AppDevice{},
		},
	}
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "test-secret",
		SessionTTLHours: 24,
		UploadDir:       "./uploads/images",
		QRDir:           "./uploads/qrcodes",
	}
}

type fakeAdminRepo struct {
	admins map[uuid.UUID]models.Admin
}

func (r *fakeAdminRepo) GetAdminByEmail(email string) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			admin := a
			return &admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) GetAdminByID(id uuid.UUID) (*models.Admin, error) {
	if a, ok := r.admins[id]; ok {
		admin := a
		return &admin, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAdminRepo) ListAdmins() ([]models.Admin, error) {
	out := make([]models.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (r *fakeAdminRepo) CountAdmins() (int64, error) {
	return int64(len(r.admins)), nil
}

func (r *fakeAdminRepo) CreateAdmin(admin *models.Admin) error {
	r.admins[admin.ID] = *admin
	return nil
}

func (r *fakeAdminRepo) DeleteAdmin(id uuid.UUID) error {
	if _, ok := r.admins[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.admins, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]models.AdminSession
}

func (r *fakeSessionRepo) CreateSession(session *models.AdminSession) error {
	r.sessions[session.ID] = *session
	return nil
}

func (r *fakeSessionRepo) GetSessionByID(id uuid.UUID) (*models.AdminSession, error) {
	if s, ok := r.sessions[id]; ok {
		session := s
		return &session, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSessionRepo) RevokeSession(id uuid.UUID) error {
	if s, ok := r.sessions[id]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
		r.sessions[id] = s
	}
	return nil
}

func (r *fakeSessionRepo) DeleteExpiredSessions() (int64, error) {
	var n int64
	now := time.Now()
	for id, s := range r.sessions {
		if now.After(s.ExpiresAt) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

type fakeEventRepo struct {
	events      map[uuid.UUID]models.Event
	assignments map[uuid.UUID]map[uuid.UUID]bool // adminID -> eventID
	admins      *fakeAdminRepo
}

func (r *fakeEventRepo) CreateEvent(event *models.Event) error {
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) GetEventByID(id uuid.UUID) (*models.Event, error) {
	if e, ok := r.events[id]; ok {
		event := e
		return &event, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) GetEventByPublicID(eventID string) (*models.Event, error) {
	for _, e := range r.events {
		if e.EventID == eventID {
			event := e
			return &event, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) GetEventByLoginCode(code string) (*models.Event, error) {
	for _, e := range r.events {
		if e.LoginCode == code {
			event := e
			return &event, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEventRepo) ListEvents(enabledOnly bool) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range r.events {
		if enabledOnly && !e.IsEnabled {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventID < out[j].EventID })
	return out, nil
}

func (r *fakeEventRepo) ListEventsByIDs(ids []uuid.UUID, enabledOnly bool) ([]models.Event, error) {
	out := []models.Event{}
	for _, id := range ids {
		e, ok := r.events[id]
		if !ok {
			continue
		}
		if enabledOnly && !e.IsEnabled {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventID < out[j].EventID })
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(id uuid.UUID, updates map[string]interface{}) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			e.Name = value.(string)
		case "description":
			e.Description = value.(string)
		case "login_code":
			e.LoginCode = value.(string)
		case "status":
			e.Status = value.(string)
		case "is_enabled":
			e.IsEnabled = value.(bool)
		case "primary_color":
			e.PrimaryColor = value.(string)
		case "secondary_color":
			e.SecondaryColor = value.(string)
		case "welcome_text":
			e.WelcomeText = value.(string)
		}
	}
	r.events[id] = e
	event := e
	return &event, nil
}

func (r *fakeEventRepo) DeleteEvent(id uuid.UUID) error {
	if _, ok := r.events[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) AssignAdmin(adminID, eventID uuid.UUID) error {
	if r.assignments[adminID] == nil {
		r.assignments[adminID] = map[uuid.UUID]bool{}
	}
	r.assignments[adminID][eventID] = true
	return nil
}

func (r *fakeEventRepo) UnassignAdmin(adminID, eventID uuid.UUID) error {
	delete(r.assignments[adminID], eventID)
	return nil
}

func (r *fakeEventRepo) IsAdminAssigned(adminID, eventID uuid.UUID) (bool, error) {
	return r.assignments[adminID][eventID], nil
}

func (r *fakeEventRepo) ListAssignedAdmins(eventID uuid.UUID) ([]models.Admin, error) {
	out := []models.Admin{}
	for adminID, events := range r.assignments {
		if events[eventID] {
			if a, ok := r.admins.admins[adminID]; ok {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (r *fakeEventRepo) ListEventIDsForAdmin(adminID uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	for eventID := range r.assignments[adminID] {
		out = append(out, eventID)
	}
	return out, nil
}

type fakeVenueRepo struct {
	venues map[uuid.UUID]models.Venue
}

func (r *fakeVenueRepo) ListVenues() ([]models.Venue, error) {
	out := []models.Venue{}
	for _, v := range r.venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeVenueRepo) GetVenueByID(id uuid.UUID) (*models.Venue, error) {
	if v, ok := r.venues[id]; ok {
		venue := v
		return &venue, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeVenueRepo) CreateVenue(venue *models.Venue) error {
	r.venues[venue.ID] = *venue
	return nil
}

func (r *fakeVenueRepo) UpdateVenue(id uuid.UUID, updates map[string]interface{}) (*models.Venue, error) {
	v, ok := r.venues[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	for column, value := range updates {
		switch column {
		case "name":
			v.Name = value.(string)
		case "address":
			v.Address = value.(string)
		case "description":
			v.Description = value.(string)
		case "city":
			v.City = value.(string)
		}
	}
	r.venues[id] = v
	venue := v
	return &venue, nil
}

func (r *fakeVenueRepo) DeleteVenue(id uuid.UUID) error {
	if _, ok := r.venues[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.venues, id)
	return nil
}

func (r *fakeVenueRepo) ListFacilities(uuid.UUID) ([]models.VenueFacility, error) {
	return []models.VenueFacility{}, nil
}
func (r *fakeVenueRepo) CreateFacility(*models.VenueFacility) error { return nil }
func (r *fakeVenueRepo) DeleteFacility(uuid.UUID) error             { return nil }
func (r *fakeVenueRepo) ListContacts(uuid.UUID) ([]models.VenueContact, error) {
	return []models.VenueContact{}, nil
}
func (r *fakeVenueRepo) CreateContact(*models.VenueContact) error { return nil }
func (r *fakeVenueRepo) DeleteContact(uuid.UUID) error            { return nil }
func (r *fakeVenueRepo) ListPhotos(uuid.UUID) ([]models.VenuePhoto, error) {
	return []models.VenuePhoto{}, nil
}
func (r *fakeVenueRepo) CreatePhoto(*models.VenuePhoto) error { return nil }
func (r *fakeVenueRepo) DeletePhoto(uuid.UUID) error          { return nil }

type fakeContentRepo struct {
	days      []models.EventDay
	sessions  []models.EventSession
	intro     []models.EventIntro
	explore   []models.PreEventExplore
	happening []models.PreEventHappening
}

func (r *fakeContentRepo) ListDays(eventID uuid.UUID) ([]models.EventDay, error) {
	out := []models.EventDay{}
	for _, d := range r.days {
		if d.EventID == eventID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) CreateDay(day *models.EventDay) error {
	r.days = append(r.days, *day)
	return nil
}

func (r *fakeContentRepo) DeleteDay(id uuid.UUID) error {
	for i, d := range r.days {
		if d.ID == id {
			r.days = append(r.days[:i], r.days[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ListSessions(eventID uuid.UUID) ([]models.EventSession, error) {
	out := []models.EventSession{}
	for _, s := range r.sessions {
		if s.EventID == eventID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) CreateSession(session *models.EventSession) error {
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *fakeContentRepo) DeleteSession(id uuid.UUID) error {
	for i, s := range r.sessions {
		if s.ID == id {
			r.sessions = append(r.sessions[:i], r.sessions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ListIntro(eventID uuid.UUID) ([]models.EventIntro, error) {
	out := []models.EventIntro{}
	for _, item := range r.intro {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) CreateIntro(intro *models.EventIntro) error {
	r.intro = append(r.intro, *intro)
	return nil
}

func (r *fakeContentRepo) DeleteIntro(id uuid.UUID) error {
	for i, item := range r.intro {
		if item.ID == id {
			r.intro = append(r.intro[:i], r.intro[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ListExplore(eventID uuid.UUID) ([]models.PreEventExplore, error) {
	out := []models.PreEventExplore{}
	for _, item := range r.explore {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) CreateExplore(item *models.PreEventExplore) error {
	r.explore = append(r.explore, *item)
	return nil
}

func (r *fakeContentRepo) DeleteExplore(id uuid.UUID) error {
	for i, item := range r.explore {
		if item.ID == id {
			r.explore = append(r.explore[:i], r.explore[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContentRepo) ListHappening(eventID uuid.UUID) ([]models.PreEventHappening, error) {
	out := []models.PreEventHappening{}
	for _, item := range r.happening {
		if item.EventID == eventID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) CreateHappening(item *models.PreEventHappening) error {
	r.happening = append(r.happening, *item)
	return nil
}

func (r *fakeContentRepo) DeleteHappening(id uuid.UUID) error {
	for i, item := range r.happening {
		if item.ID == id {
			r.happening = append(r.happening[:i], r.happening[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]models.EventCategory
}

func (r *fakeCategoryRepo) ListCategories() ([]models.EventCategory, error) {
	out := []models.EventCategory{}
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) GetCategoryByID(id uuid.UUID) (*models.EventCategory, error) {
	if c, ok := r.categories[id]; ok {
		category := c
		return &category, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) CreateCategory(category *models.EventCategory) error {
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) UpdateCategory(id uuid.UUID, updates map[string]interface{}) (*models.EventCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if name, ok := updates["name"]; ok {
		c.Name = name.(string)
	}
	if description, ok := updates["description"]; ok {
		c.Description = description.(string)
	}
	r.categories[id] = c
	category := c
	return &category, nil
}

func (r *fakeCategoryRepo) DeleteCategory(id uuid.UUID) error {
	if _, ok := r.categories[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.categories, id)
	return nil
}

type otpKey struct {
	eventID     uuid.UUID
	countryCode string
	phoneNumber string
}

type deviceKey struct {
	userID   uuid.UUID
	eventID  uuid.UUID
	fcmToken string
}

type fakeAppRepo struct {
	otps     map[otpKey]models.AppOtp
	users    map[uuid.UUID]models.AppUser
	devices  map[deviceKey]models.AppDevice
	settings *models.AppProfileSetting
}

func (r *fakeAppRepo) ReplaceOtp(otp *models.AppOtp) error {
	key := otpKey{otp.EventID, otp.CountryCode, otp.PhoneNumber}
	r.otps[key] = *otp
	return nil
}

func (r *fakeAppRepo) ConsumeOtp(eventID uuid.UUID, countryCode, phoneNumber, code string, now time.Time) (bool, error) {
	key := otpKey{eventID, countryCode, phoneNumber}
	otp, ok := r.otps[key]
	if !ok || otp.Otp != code || otp.IsVerified || !now.Before(otp.ExpiresAt) {
		return false, nil
	}
	otp.IsVerified = true
	r.otps[key] = otp
	return true, nil
}

func (r *fakeAppRepo) CountLiveOtps(eventID uuid.UUID, countryCode, phoneNumber string, now time.Time) (int64, error) {
	key := otpKey{eventID, countryCode, phoneNumber}
	if otp, ok := r.otps[key]; ok && !otp.IsVerified && now.Before(otp.ExpiresAt) {
		return 1, nil
	}
	return 0, nil
}

func (r *fakeAppRepo) GetUser(eventID uuid.UUID, countryCode, phoneNumber string) (*models.AppUser, error) {
	for _, u := range r.users {
		if u.EventID == eventID && u.CountryCode == countryCode && u.PhoneNumber == phoneNumber {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAppRepo) GetUserByID(id uuid.UUID) (*models.AppUser, error) {
	if u, ok := r.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAppRepo) CreateUser(user *models.AppUser) error {
	r.users[user.ID] = *user
	return nil
}

func (r *fakeAppRepo) UpdateUser(id uuid.UUID, updates map[string]interface{}) (*models.AppUser, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if username, ok := updates["username"]; ok {
		u.Username = username.(string)
	}
	if image, ok := updates["profile_image_url"]; ok {
		u.ProfileImageURL = image.(string)
	}
	if insta, ok := updates["insta_id"]; ok {
		u.InstaID = insta.(string)
	}
	r.users[id] = u
	user := u
	return &user, nil
}

func (r *fakeAppRepo) UpsertDevice(device *models.AppDevice) (*models.AppDevice, error) {
	key := deviceKey{device.UserID, device.EventID, device.FcmToken}
	if existing, ok := r.devices[key]; ok {
		existing.Platform = device.Platform
		existing.DeviceType = device.DeviceType
		if device.AppVersion != "" {
			existing.AppVersion = device.AppVersion
		}
		if device.DeviceVersion != "" {
			existing.DeviceVersion = device.DeviceVersion
		}
		r.devices[key] = existing
		current := existing
		return &current, nil
	}
	r.devices[key] = *device
	current := *device
	return &current, nil
}

func (r *fakeAppRepo) GetProfileSettings() (*models.AppProfileSetting, error) {
	if r.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	settings := *r.settings
	return &settings, nil
}
