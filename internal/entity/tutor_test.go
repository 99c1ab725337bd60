package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTutorFullName(t *testing.T) {
	assert.Equal(t, "Anna Weber", (&Tutor{FirstName: "Anna", LastName: "Weber"}).FullName())
	assert.Equal(t, "Anna", (&Tutor{FirstName: "Anna"}).FullName())
	assert.Equal(t, "", (&Tutor{}).FullName())
}

func TestInitTeachingSinceKeepsExistingValue(t *testing.T) {
	existing := date("2020-09-01")
	tutor := &Tutor{TeachingSince: &existing}
	tutor.InitTeachingSince(time.Now())
	assert.Equal(t, existing, *tutor.TeachingSince)

	blank := &Tutor{}
	now := date("2024-03-01")
	blank.InitTeachingSince(now)
	if assert.NotNil(t, blank.TeachingSince) {
		assert.Equal(t, now, *blank.TeachingSince)
	}
}

func TestNewUserFromTutor(t *testing.T) {
	tutor := &Tutor{FirstName: "Anna", LastName: "Weber", Email: "anna@example.test", SubscribesNewsletter: true}
	user := NewUserFromTutor(tutor, "a1b2c3d4e5")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "anna@example.test", user.Email)
	assert.Equal(t, "Anna Weber", user.FullName)
	assert.Equal(t, "a1b2c3d4e5", user.Password)
	assert.True(t, user.Activated)
	assert.True(t, user.PasswordChanged)
	assert.True(t, user.SubscribesNewsletter)
}
