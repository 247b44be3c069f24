package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// pathParam copia el parámetro de ruta: fiber reutiliza el buffer de la petición y los IDs
// terminan como claves o referencias que sobreviven a la petición.
func pathParam(c *fiber.Ctx, name string) string {
	return utils.CopyString(c.Params(name))
}

// pagination lee limit/offset con los topes de siempre: limit 20 por defecto, máximo 100.
func pagination(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// dateRange lee from/to (YYYY-MM-DD). "to" incluye el día completo. Ausentes = sin límite.
func dateRange(c *fiber.Ctx) (repository.DateRange, bool) {
	var r repository.DateRange
	if s := c.Query("from"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return r, false
		}
		r.From = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			return r, false
		}
		r.To = t.Add(24*time.Hour - time.Nanosecond)
	}
	if !r.From.IsZero() && !r.To.IsZero() && r.To.Before(r.From) {
		return r, false
	}
	return r, true
}

// reportPeriod como dateRange pero con el mes en curso por defecto.
func reportPeriod(c *fiber.Ctx) (start, end time.Time, ok bool) {
	r, ok := dateRange(c)
	if !ok {
		return start, end, false
	}
	now := time.Now()
	if r.From.IsZero() {
		r.From = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	if r.To.IsZero() {
		y, m, d := now.Date()
		r.To = time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	}
	if r.To.Before(r.From) {
		return start, end, false
	}
	return r.From, r.To, true
}

// confirmed acepta la confirmación por query (?confirm=true) o por body JSON.
func confirmed(c *fiber.Ctx) bool {
	if c.QueryBool("confirm", false) {
		return true
	}
	if len(c.Body()) == 0 {
		return false
	}
	var in struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.BodyParser(&in); err != nil {
		return false
	}
	return in.Confirm
}
