package firebase

import (
	"testing"
	"time"

	"railmadad/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestProfileDocument_LegacyRoleDefaultsToPassenger(t *testing.T) {
	doc := &profileDocument{Name: "Old User", Email: "old@example.com"}

	rec := doc.toRecord("uid-1")

	assert.Equal(t, "uid-1", rec.ProviderUserID)
	assert.Equal(t, entity.RolePassenger, rec.Role)
}

func TestProfileDocument_RoundTripsRecord(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := &entity.ProfileRecord{
		ProviderUserID:  "uid-2",
		Name:            "Staff",
		Email:           "staff@example.com",
		Role:            entity.RoleAdmin,
		PhoneNumber:     "+919999999999",
		ProfileImageURL: "https://example.com/p.png",
		CreatedAt:       createdAt,
	}

	doc := toDocument(rec)
	assert.Equal(t, "admin", doc.Role)

	assert.Equal(t, rec, doc.toRecord("uid-2"))
}
