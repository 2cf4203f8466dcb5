package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hridsync/internal/logger"
	"hridsync/models"
	"hridsync/repositories"
)

var ErrNutritionistNotFound = errors.New("nutritionist_not_found")

// NutritionistStore is the directory surface the service needs.
type NutritionistStore interface {
	List(ctx context.Context) ([]models.Nutritionist, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Nutritionist, error)
	UpsertByUser(ctx context.Context, n *models.Nutritionist) error
}

// NutritionistWithUser joins a profile with its account identity.
type NutritionistWithUser struct {
	Profile models.Nutritionist
	User    models.User
}

type NutritionistService struct {
	nutritionists NutritionistStore
	users         UserStore
}

func NewNutritionistService(nutritionists NutritionistStore, users UserStore) *NutritionistService {
	return &NutritionistService{nutritionists: nutritionists, users: users}
}

// UpsertProfile creates or updates the caller's directory profile. The
// profile is keyed on the account id; a nutritionist has at most one.
func (s *NutritionistService) UpsertProfile(ctx context.Context, userID primitive.ObjectID, profile models.Nutritionist) error {
	profile.UserID = userID
	return s.nutritionists.UpsertByUser(ctx, &profile)
}

// ResolveUserID maps a directory profile id onto the account id behind it.
// Chat sessions are keyed on user ids, not profile ids.
func (s *NutritionistService) ResolveUserID(ctx context.Context, profileID primitive.ObjectID) (primitive.ObjectID, error) {
	profile, err := s.nutritionists.FindByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return primitive.NilObjectID, ErrNutritionistNotFound
		}
		return primitive.NilObjectID, err
	}
	return profile.UserID, nil
}

// List returns all profiles joined with their user accounts. Profiles whose
// account vanished are skipped rather than failing the whole listing.
func (s *NutritionistService) List(ctx context.Context) ([]NutritionistWithUser, error) {
	profiles, err := s.nutritionists.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]NutritionistWithUser, 0, len(profiles))
	for _, p := range profiles {
		user, err := s.users.FindByID(ctx, p.UserID)
		if err != nil {
			logger.WarnWithFields("nutritionist without account skipped", logger.Fields{
				"nutritionist_id": p.ID.Hex(),
				"user_id":         p.UserID.Hex(),
			})
			continue
		}
		out = append(out, NutritionistWithUser{Profile: p, User: *user})
	}
	return out, nil
}
