package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/dto"
	"github.com/easycashflows/api/internal/domain/entity"
	"github.com/easycashflows/api/internal/domain/repository"
)

// settingsTTL: il limiter rilegge le impostazioni dal DB al più una volta
// ogni TTL, non a ogni richiesta.
const settingsTTL = 60 * time.Second

// SecurityLimiter applica il rate limiting pilotato dalla riga singleton di
// SecuritySettings. Finestra fissa in memoria, contatori per IP.
type SecurityLimiter struct {
	repo repository.SecuritySettingsRepository

	mu       sync.Mutex
	settings *entity.SecuritySettings
	loadedAt time.Time

	general *windowCounter
	login   *windowCounter
}

// NewSecurityLimiter costruisce il limiter.
func NewSecurityLimiter(repo repository.SecuritySettingsRepository) *SecurityLimiter {
	return &SecurityLimiter{
		repo:    repo,
		general: newWindowCounter(),
		login:   newWindowCounter(),
	}
}

// current restituisce le impostazioni, rileggendole dal DB a TTL scaduto.
// In caso di errore DB restano in vigore le ultime lette.
func (s *SecurityLimiter) current() *entity.SecuritySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings != nil && time.Since(s.loadedAt) < settingsTTL {
		return s.settings
	}
	if settings, err := s.repo.Get(); err == nil {
		s.settings = settings
	}
	s.loadedAt = time.Now()
	return s.settings
}

// Middleware limita le richieste generali per IP (requests_per_minute).
func (s *SecurityLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings := s.current()
		if settings == nil || !settings.RateLimitEnabled {
			return c.Next()
		}
		if !s.general.allow(c.IP(), settings.RequestsPerMinute, time.Minute) {
			return tooManyRequests(c)
		}
		return c.Next()
	}
}

// LoginMiddleware limita i tentativi di login per IP
// (login_max_attempts nella finestra login_window_minutes).
func (s *SecurityLimiter) LoginMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings := s.current()
		if settings == nil || !settings.RateLimitEnabled {
			return c.Next()
		}
		window := time.Duration(settings.LoginWindowMinutes) * time.Minute
		if !s.login.allow(c.IP(), settings.LoginMaxAttempts, window) {
			return tooManyRequests(c)
		}
		return c.Next()
	}
}

func tooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
		Code:    "RATE_LIMITED",
		Message: "troppe richieste, riprova più tardi",
	})
}

// windowCounter contatore a finestra fissa per chiave (IP).
type windowCounter struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count   int
	resetAt time.Time
}

func newWindowCounter() *windowCounter {
	return &windowCounter{entries: make(map[string]*windowEntry)}
}

func (w *windowCounter) allow(key string, limit int, window time.Duration) bool {
	if limit <= 0 {
		return true
	}
	now := time.Now()

	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.entries[key]
	if !ok || now.After(e.resetAt) {
		// Finestra nuova: occasione anche per ripulire le scadute.
		if len(w.entries) > 10000 {
			for k, v := range w.entries {
				if now.After(v.resetAt) {
					delete(w.entries, k)
				}
			}
		}
		w.entries[key] = &windowEntry{count: 1, resetAt: now.Add(window)}
		return true
	}
	if e.count >= limit {
		return false
	}
	e.count++
	return true
}
