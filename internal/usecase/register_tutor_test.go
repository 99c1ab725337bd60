package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/enercore/backoffice/internal/entity"
)

func registerInput() RegisterTutorInput {
	return RegisterTutorInput{
		FirstName: "Anna",
		LastName:  "Weber",
		Email:     "anna.weber@example.test",
	}
}

func newRegisterUC(tutors *MockTutorRepository, users *MockUserRepository, mailer *MockMailer) *RegisterTutorUseCase {
	tx := &fakeTxRunner{repos: TxRepos{Tutors: tutors, Users: users}}
	return NewRegisterTutorUseCase(tx, tutors, mailer, zerolog.Nop())
}

func TestRegisterTutorSuccess(t *testing.T) {
	ctx := context.Background()
	tutors := new(MockTutorRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tutors.On("Create", ctx, mock.AnythingOfType("*entity.Tutor")).Return(nil)
	mailer.On("RenderAccountActivation", mock.AnythingOfType("*entity.User"), mock.AnythingOfType("string")).
		Return(&MailMessage{To: []string{"anna.weber@example.test"}, Subject: "Activate your tutor account", Body: "b"}, nil)
	mailer.On("Deliver", mock.Anything).Return(nil)
	tutors.On("UpdateRegistrationStep", ctx, mock.AnythingOfType("string"), entity.RegistrationStepLocations).Return(nil)

	out, err := newRegisterUC(tutors, users, mailer).Execute(ctx, registerInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, out.UserID)
	assert.NotEmpty(t, out.ActivatedKey)
	assert.Equal(t, entity.RegistrationStepLocations, out.RegistrationStep)
	mailer.AssertNumberOfCalls(t, "Deliver", 1)

	user := users.Calls[0].Arguments.Get(1).(*entity.User)
	assert.True(t, user.Activated)
	assert.True(t, user.PasswordChanged)
	assert.Len(t, user.Password, 10)
	assert.Equal(t, "Anna Weber", user.FullName)

	tutor := tutors.Calls[0].Arguments.Get(1).(*entity.Tutor)
	assert.Equal(t, user.ID, tutor.UserID)
	assert.NotNil(t, tutor.TeachingSince)
	// the one-time password is shared between the account and the
	// confirmation step, not regenerated
	assert.Equal(t, user.Password, tutor.InitialPassword)
}

func TestRegisterTutorAppliesContext(t *testing.T) {
	ctx := context.Background()
	tutors := new(MockTutorRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("Create", ctx, mock.Anything).Return(nil)
	tutors.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("RenderAccountActivation", mock.Anything, mock.Anything).
		Return(&MailMessage{To: []string{"anna.weber@example.test"}, Subject: "s", Body: "b"}, nil)
	mailer.On("Deliver", mock.Anything).Return(nil)
	tutors.On("UpdateRegistrationStep", ctx, mock.Anything, mock.Anything).Return(nil)

	input := registerInput()
	input.SubscribesNewsletter = true
	input.Context = RegistrationContext{
		LandingpageURL: "/some-page",
		PartnerIDs:     []int{1},
		PartnerInfos:   []string{"StudiVZ"},
	}

	_, err := newRegisterUC(tutors, users, mailer).Execute(ctx, input)
	assert.NoError(t, err)

	tutor := tutors.Calls[0].Arguments.Get(1).(*entity.Tutor)
	assert.Equal(t, "/some-page", tutor.LandingpageURL)
	if assert.NotNil(t, tutor.PartnerID) {
		assert.Equal(t, 1, *tutor.PartnerID)
	}
	assert.Equal(t, "StudiVZ", tutor.PartnerInfo)

	user := users.Calls[0].Arguments.Get(1).(*entity.User)
	assert.True(t, user.SubscribesNewsletter)
}

func TestRegisterTutorAccountFailureAbortsEverything(t *testing.T) {
	ctx := context.Background()
	tutors := new(MockTutorRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))

	out, err := newRegisterUC(tutors, users, mailer).Execute(ctx, registerInput())

	assert.Nil(t, out)
	var te *TechnicalError
	if assert.ErrorAs(t, err, &te) {
		assert.Equal(t, "TRANSACTION_ABORTED", te.Code)
	}
	tutors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "Deliver", mock.Anything)
	tutors.AssertNotCalled(t, "UpdateRegistrationStep", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterTutorMailFailureAbortsEverything(t *testing.T) {
	ctx := context.Background()
	tutors := new(MockTutorRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("Create", ctx, mock.Anything).Return(nil)
	tutors.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("RenderAccountActivation", mock.Anything, mock.Anything).
		Return(&MailMessage{To: []string{"anna.weber@example.test"}, Subject: "s", Body: "b"}, nil)
	mailer.On("Deliver", mock.Anything).Return(errors.New("smtp refused"))

	out, err := newRegisterUC(tutors, users, mailer).Execute(ctx, registerInput())

	assert.Nil(t, out)
	var te *TechnicalError
	if assert.ErrorAs(t, err, &te) {
		assert.Equal(t, "TRANSACTION_ABORTED", te.Code)
	}
	tutors.AssertNotCalled(t, "UpdateRegistrationStep", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterTutorInvalidProfileStillRegisters(t *testing.T) {
	ctx := context.Background()
	tutors := new(MockTutorRepository)
	users := new(MockUserRepository)
	mailer := new(MockMailer)

	users.On("Create", ctx, mock.Anything).Return(nil)
	tutors.On("Create", ctx, mock.Anything).Return(nil)
	mailer.On("RenderAccountActivation", mock.Anything, mock.Anything).
		Return(&MailMessage{To: []string{""}, Subject: "s", Body: "b"}, nil)
	mailer.On("Deliver", mock.Anything).Return(nil)
	tutors.On("UpdateRegistrationStep", ctx, mock.Anything, mock.Anything).Return(nil)

	// validation is advisory in this flow: missing fields are logged, the
	// registration itself still runs
	input := RegisterTutorInput{FirstName: "Anna"}
	out, err := newRegisterUC(tutors, users, mailer).Execute(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, out)
}

func TestInitialPasswordShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 16; i++ {
		pw, err := initialPassword()
		assert.NoError(t, err)
		assert.Len(t, pw, 10)
		assert.Regexp(t, "^[0-9a-f]{10}$", pw)
		seen[pw] = true
	}
	assert.Greater(t, len(seen), 1)
}
