package services

import (
	"fmt"
	"strings"
	"time"

	"event-admin-backend/internal/config"
	"event-admin-backend/internal/models"
	"event-admin-backend/internal/repositories"
	"event-admin-backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"github.com/sirupsen/logrus"
)

// AuthService owns admin credentials and the server-side session lifecycle.
// The session cookie carries a signed JWT whose sid claim points at an
// admin_sessions row; the row holds the TTL and revocation state, so a leaked
// admin id alone is worthless.
type AuthService struct {
	repo *repositories.Repository
	cfg  *config.Config
}

func NewAuthService(repo *repositories.Repository, cfg *config.Config) *AuthService {
	return &AuthService{repo: repo, cfg: cfg}
}

type LoginResult struct {
	Token     string        `json:"-"`
	ExpiresAt time.Time     `json:"expires_at"`
	Admin     *models.Admin `json:"admin"`
}

func (s *AuthService) Login(email, password, userAgent string) (*LoginResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrBadRequest)
	}

	admin, err := s.repo.AdminRepo.GetAdminByEmail(email)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
		}
		return nil, err
	}

	if err := utils.CheckPassword(password, admin.PasswordHash); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	// Opportunistic sweep; a failure never blocks the login.
	if n, err := s.repo.SessionRepo.DeleteExpiredSessions(); err != nil {
		logrus.WithError(err).Warn("failed to sweep expired sessions")
	} else if n > 0 {
		logrus.WithField("count", n).Debug("expired sessions removed")
	}

	session := &models.AdminSession{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		Device:    deviceLabel(userAgent),
		ExpiresAt: time.Now().Add(time.Duration(s.cfg.SessionTTLHours) * time.Hour),
	}
	if err := s.repo.SessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	token, err := s.signSessionToken(session)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"admin_id": admin.ID,
		"session":  session.ID,
	}).Info("admin logged in")

	return &LoginResult{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Admin:     admin,
	}, nil
}

// Logout revokes the session behind the presented token. Revocation is
// idempotent.
func (s *AuthService) Logout(sessionID uuid.UUID) error {
	return s.repo.SessionRepo.RevokeSession(sessionID)
}

// ResolveSession turns a sid claim into the authenticated admin. An invalid,
// expired, or revoked session is an authentication failure; a session whose
// admin has since been deleted is not-found.
func (s *AuthService) ResolveSession(sessionID uuid.UUID) (*models.Admin, error) {
	session, err := s.repo.SessionRepo.GetSessionByID(sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid session", ErrUnauthenticated)
		}
		return nil, err
	}
	if !session.Valid(time.Now()) {
		return nil, fmt.Errorf("%w: session expired", ErrUnauthenticated)
	}

	admin, err := s.repo.AdminRepo.GetAdminByID(session.AdminID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: admin not found", ErrNotFound)
		}
		return nil, err
	}
	return admin, nil
}

// SetupNeeded reports whether the first-run setup flow is still open.
func (s *AuthService) SetupNeeded() (bool, error) {
	count, err := s.repo.AdminRepo.CountAdmins()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// CreateSuperAdmin bootstraps the first account. Once any admin exists the
// setup endpoint is closed.
func (s *AuthService) CreateSuperAdmin(email, password, name string) (*models.Admin, error) {
	needed, err := s.SetupNeeded()
	if err != nil {
		return nil, err
	}
	if !needed {
		return nil, fmt.Errorf("%w: super admin already exists", ErrForbidden)
	}
	return s.createAdmin(email, password, name, models.RoleSuperAdmin)
}

func (s *AuthService) CreateAdmin(actor *models.Admin, email, password, name, role string) (*models.Admin, error) {
	if err := RequireAction(actor, ActionCreateAdmin); err != nil {
		return nil, err
	}

	// Anything but an explicit super_admin request becomes an event admin.
	if role != models.RoleSuperAdmin {
		role = models.RoleEventAdmin
	}
	return s.createAdmin(email, password, name, role)
}

func (s *AuthService) createAdmin(email, password, name, role string) (*models.Admin, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password, and name are required", ErrBadRequest)
	}

	if existing, _ := s.repo.AdminRepo.GetAdminByEmail(email); existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrBadRequest)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, err.Error())
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Role:         role,
	}
	if err := s.repo.AdminRepo.CreateAdmin(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) ListAdmins(actor *models.Admin) ([]models.Admin, error) {
	if err := RequireAction(actor, ActionListAdmins); err != nil {
		return nil, err
	}
	return s.repo.AdminRepo.ListAdmins()
}

// DeleteAdmin removes an event admin. Self-deletion and deleting another
// super admin are rejected before any write.
func (s *AuthService) DeleteAdmin(actor *models.Admin, id uuid.UUID) error {
	if err := RequireAction(actor, ActionDeleteAdmin); err != nil {
		return err
	}
	if actor.ID == id {
		return fmt.Errorf("%w: cannot delete your own account", ErrBadRequest)
	}

	target, err := s.repo.AdminRepo.GetAdminByID(id)
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: admin not found", ErrNotFound)
		}
		return err
	}
	if target.IsSuperAdmin() {
		return fmt.Errorf("%w: cannot delete super admin accounts", ErrForbidden)
	}

	return s.repo.AdminRepo.DeleteAdmin(id)
}

func (s *AuthService) signSessionToken(session *models.AdminSession) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID.String(),
		"admin_id": session.AdminID.String(),
		"exp":      session.ExpiresAt.Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func deviceLabel(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := user_agent.New(rawUA)
	name, version := ua.Browser()
	label := strings.TrimSpace(name + " " + version)
	if os := ua.OS(); os != "" {
		label = label + " / " + os
	}
	return label
}
