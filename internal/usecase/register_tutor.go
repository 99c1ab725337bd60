package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/enercore/backoffice/internal/entity"
)

const initialPasswordLength = 10

// RegisterTutorUseCase runs the tutor onboarding as one atomic unit: account
// record, one-time password, activation key and activation notification either
// all land or none do. A partially created registration is never observable.
type RegisterTutorUseCase struct {
	Tx     TxRunnerInterface
	Tutors TutorRepositoryInterface
	Mailer MailerInterface
	Log    zerolog.Logger

	Now func() time.Time
}

func NewRegisterTutorUseCase(
	tx TxRunnerInterface,
	tutors TutorRepositoryInterface,
	mailer MailerInterface,
	log zerolog.Logger,
) *RegisterTutorUseCase {
	return &RegisterTutorUseCase{
		Tx:     tx,
		Tutors: tutors,
		Mailer: mailer,
		Log:    log,
		Now:    time.Now,
	}
}

func (uc *RegisterTutorUseCase) Execute(ctx context.Context, input RegisterTutorInput) (*RegisterTutorOutput, error) {
	now := uc.Now()
	tutor := &entity.Tutor{
		ID:                   uuid.New().String(),
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		Email:                input.Email,
		SubscribesNewsletter: input.SubscribesNewsletter,
		RegistrationStep:     entity.RegistrationStepApply,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	// Validation is computed up front but does not abort the registration;
	// the funnel accepts incomplete profiles and completes them later.
	if errs := ValidateRegisterTutorInput(input); len(errs) > 0 {
		uc.Log.Warn().Str("tutor_id", tutor.ID).Int("violations", len(errs)).
			Msg("registering tutor with invalid profile fields")
	}

	err := uc.Tx.Run(ctx, func(ctx context.Context, repos TxRepos) error {
		password, err := initialPassword()
		if err != nil {
			return fmt.Errorf("generate initial password: %w", err)
		}

		user := entity.NewUserFromTutor(tutor, password)
		if err := repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		tutor.User = user
		tutor.UserID = user.ID
		tutor.InitialPassword = password
		tutor.LandingpageURL = input.Context.LandingpageURL
		tutor.InitTeachingSince(now)
		tutor.ActivatedKey = uuid.New().String()
		applyPartnerInfo(tutor, input.Context)

		if err := repos.Tutors.Create(ctx, tutor); err != nil {
			return fmt.Errorf("create tutor: %w", err)
		}

		rendered, err := uc.Mailer.RenderAccountActivation(user, tutor.ActivatedKey)
		if err != nil {
			return fmt.Errorf("render activation mail: %w", err)
		}
		if err := uc.Mailer.Deliver(rendered); err != nil {
			return fmt.Errorf("deliver activation mail: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "TRANSACTION_ABORTED",
			Message: "tutor registration rolled back: " + err.Error(),
		}
	}

	// Best-effort funnel bookkeeping, intentionally outside the transaction.
	tutor.RegistrationStep = entity.RegistrationStepLocations
	if err := uc.Tutors.UpdateRegistrationStep(ctx, tutor.ID, entity.RegistrationStepLocations); err != nil {
		uc.Log.Warn().Err(err).Str("tutor_id", tutor.ID).Msg("registration step not advanced")
	}

	return &RegisterTutorOutput{
		ID:               tutor.ID,
		UserID:           tutor.UserID,
		RegistrationStep: tutor.RegistrationStep,
		ActivatedKey:     tutor.ActivatedKey,
		Msg:              "tutor registered",
	}, nil
}

// initialPassword returns a fixed-length hexadecimal one-time password. It is
// generated once per registration and shared between the account record and
// the password-confirmation step.
func initialPassword() (string, error) {
	buf := make([]byte, (initialPasswordLength+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:initialPasswordLength], nil
}

func applyPartnerInfo(tutor *entity.Tutor, rc RegistrationContext) {
	if len(rc.PartnerIDs) > 0 {
		id := rc.PartnerIDs[0]
		tutor.PartnerID = &id
	}
	if len(rc.PartnerInfos) > 0 {
		tutor.PartnerInfo = rc.PartnerInfos[0]
	}
}
