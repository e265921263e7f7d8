package authhandler

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	usersstore "staffhub-backend/lib/users/store"
	"staffhub-backend/models"
	authapimodels "staffhub-backend/models/api/auth"
	userapimodels "staffhub-backend/models/api/users"
	dbmodels "staffhub-backend/models/db"
)

type fakeUsersStore struct {
	usersstore.Provider
	created []dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	rec.ID = fmt.Sprintf("user-%d", len(f.created)+1)
	f.created = append(f.created, rec)
	return rec.ID, nil
}

func (f *fakeUsersStore) ExistByEmail(email string) (bool, error) {
	for _, rec := range f.created {
		if rec.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUsersStore) ListCount(filter userapimodels.UserFilter) (int64, error) {
	return int64(len(f.created)), nil
}

func TestRegister(t *testing.T) {
	store := &fakeUsersStore{}
	h := impl{usersStore: store}

	t.Run("first user becomes owner", func(t *testing.T) {
		_, err := h.Register(authapimodels.RegisterRequest{
			Email:     "founder@staffhub.test",
			Password:  "long-enough-pw",
			FirstName: "Avery",
			LastName:  "Cole",
		})
		require.NoError(t, err)
		require.Equal(t, models.OwnerRole, store.created[0].Role)
	})

	t.Run("later registrations are always staff", func(t *testing.T) {
		_, err := h.Register(authapimodels.RegisterRequest{
			Email:     "newhire@staffhub.test",
			Password:  "long-enough-pw",
			FirstName: "Dana",
			LastName:  "Reyes",
		})
		require.NoError(t, err)
		require.Equal(t, models.StaffRole, store.created[1].Role)
	})

	t.Run("role field in the payload is not honored", func(t *testing.T) {
		payload := []byte(`{"email":"intruder@staffhub.test","password":"long-enough-pw","first_name":"In","last_name":"Truder","role":"ADMIN"}`)
		var data authapimodels.RegisterRequest
		require.NoError(t, json.Unmarshal(payload, &data))
		require.NoError(t, data.Validate())

		_, err := h.Register(data)
		require.NoError(t, err)
		require.Equal(t, models.StaffRole, store.created[2].Role)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := h.Register(authapimodels.RegisterRequest{
			Email:     "newhire@staffhub.test",
			Password:  "long-enough-pw",
			FirstName: "Dana",
			LastName:  "Reyes",
		})
		require.EqualError(t, err, "a user with this email already exists")
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		require.NotEqual(t, "long-enough-pw", store.created[0].PasswordHash)
		require.NotEmpty(t, store.created[0].PasswordHash)
	})
}
