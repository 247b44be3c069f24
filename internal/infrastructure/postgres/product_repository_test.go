package postgres

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// oldAlias detecta referencias a "old", reservado en RETURNING desde PostgreSQL 18.
var oldAlias = regexp.MustCompile(`(?i)\bold\b`)

func TestQuantitySQL_AliasPrev(t *testing.T) {
	queries := map[string]string{
		"set":    setQuantitySQL,
		"adjust": adjustQuantitySQL,
	}
	for name, q := range queries {
		t.Run(name, func(t *testing.T) {
			assert.False(t, oldAlias.MatchString(q), "no debe usar el alias old")
			assert.Contains(t, q, "FOR UPDATE) prev")
			assert.Contains(t, q, "RETURNING p.id::text, prev.quantity, p.quantity")
			assert.True(t, strings.Contains(q, "WHERE id = $1 AND owner_id = $2"), "acotado al dueño")
		})
	}
	assert.Contains(t, adjustQuantitySQL, "GREATEST(prev.quantity + $3, 0)")
}

func TestValidID(t *testing.T) {
	assert.True(t, validID("8f14e45f-ceea-467f-a0e6-1c2b3d4e5f60"))
	assert.False(t, validID("no-es-uuid"))
	assert.False(t, validID(""))
}
