package firebase

import (
	"context"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/service"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// profileDocument is the Firestore shape of users/{uid}.
type profileDocument struct {
	Name            string    `firestore:"name"`
	Email           string    `firestore:"email"`
	Role            string    `firestore:"role,omitempty"`
	PhoneNumber     string    `firestore:"phoneNumber,omitempty"`
	Gender          string    `firestore:"gender,omitempty"`
	Address         string    `firestore:"address,omitempty"`
	ProfileImageURL string    `firestore:"profileImage,omitempty"`
	CreatedAt       time.Time `firestore:"createdAt"`
}

func toDocument(rec *entity.ProfileRecord) *profileDocument {
	return &profileDocument{
		Name:            rec.Name,
		Email:           rec.Email,
		Role:            rec.Role.String(),
		PhoneNumber:     rec.PhoneNumber,
		Gender:          rec.Gender,
		Address:         rec.Address,
		ProfileImageURL: rec.ProfileImageURL,
		CreatedAt:       rec.CreatedAt,
	}
}

// toRecord maps a stored document. Legacy documents without a role are
// passengers.
func (d *profileDocument) toRecord(uid string) *entity.ProfileRecord {
	return &entity.ProfileRecord{
		ProviderUserID:  uid,
		Name:            d.Name,
		Email:           d.Email,
		Role:            entity.ParseRole(d.Role),
		PhoneNumber:     d.PhoneNumber,
		Gender:          d.Gender,
		Address:         d.Address,
		ProfileImageURL: d.ProfileImageURL,
		CreatedAt:       d.CreatedAt,
	}
}

type profileStore struct {
	client     *firestore.Client
	collection string
}

// NewProfileStore is the constructor for the Firestore profile store.
func NewProfileStore(client *firestore.Client, cfg *config.Config) service.ProfileStore {
	return &profileStore{
		client:     client,
		collection: cfg.Firebase.ProfileCollection,
	}
}

// GetProfile returns (nil, nil) when users/{uid} does not exist.
func (s *profileStore) GetProfile(ctx context.Context, uid string) (*entity.ProfileRecord, error) {
	snap, err := s.client.Collection(s.collection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read profile document")
	}

	var doc profileDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return doc.toRecord(uid), nil
}

// CreateProfile writes users/{uid}, failing if the document already exists.
func (s *profileStore) CreateProfile(ctx context.Context, rec *entity.ProfileRecord) error {
	if rec.ProviderUserID == "" {
		return errors.New("profile record has no provider user id")
	}

	_, err := s.client.Collection(s.collection).Doc(rec.ProviderUserID).Create(ctx, toDocument(rec))
	if err != nil {
		return errors.Wrap(err, "failed to create profile document")
	}

	return nil
}
