// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/internal/store"
	"github.com/MKhiriev/go-ride-docs/internal/utils"
	"github.com/MKhiriev/go-ride-docs/models"
)

// authService is the concrete implementation of AuthService.
// It handles phone onboarding with one-time codes, registration and the JWT
// token lifecycle.
type authService struct {
	userRepository  store.UserRepository
	otpRepository   store.OTPRepository
	documentService DocumentService
	codeSender      CodeSender
	ids             utils.IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	otpLength int
	otpTTL    time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
func NewAuthService(
	userRepository store.UserRepository,
	otpRepository store.OTPRepository,
	documentService DocumentService,
	codeSender CodeSender,
	ids utils.IDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		otpRepository:   otpRepository,
		documentService: documentService,
		codeSender:      codeSender,
		ids:             ids,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		otpLength:       cfg.OTPLength,
		otpTTL:          cfg.OTPTTL,
		now:             time.Now,
		logger:          logger,
	}
}

// Onboard finds or creates the user and issues a fresh verification code,
// replacing any code still pending for the number.
func (a *authService) Onboard(ctx context.Context, mobileNumber string) (models.User, error) {
	log := logger.FromContext(ctx)

	if mobileNumber == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.findOrCreateUser(ctx, mobileNumber)
	if err != nil {
		log.Err(err).Str("mobile_number", mobileNumber).Msg("user onboarding ended with error")
		return models.User{}, fmt.Errorf("user onboarding ended with error: %w", err)
	}

	if err = a.issueCode(ctx, mobileNumber); err != nil {
		log.Err(err).Str("mobile_number", mobileNumber).Msg("verification code was not issued")
		return models.User{}, err
	}

	return user, nil
}

func (a *authService) findOrCreateUser(ctx context.Context, mobileNumber string) (models.User, error) {
	user, err := a.userRepository.GetUserByMobile(ctx, mobileNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, err
	}

	user, err = a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.Generate(),
		MobileNumber: mobileNumber,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrMobileNumberAlreadyExists) {
		// created concurrently by another onboarding request
		return a.userRepository.GetUserByMobile(ctx, mobileNumber)
	}
	return user, err
}

func (a *authService) issueCode(ctx context.Context, mobileNumber string) error {
	code, err := utils.GenerateOTP(a.otpLength)
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}
	hash, err := utils.HashSecret(code)
	if err != nil {
		return fmt.Errorf("hash verification code: %w", err)
	}

	err = a.otpRepository.SaveOTP(ctx, models.OTP{
		MobileNumber: mobileNumber,
		CodeHash:     hash,
		ExpiresAt:    a.now().Add(a.otpTTL),
	})
	if err != nil {
		return fmt.Errorf("save verification code: %w", err)
	}

	if err = a.codeSender.Send(ctx, mobileNumber, code); err != nil {
		return fmt.Errorf("send verification code: %w", err)
	}
	return nil
}

// Login authenticates a registered user by mobile number and password.
// Unknown numbers and users without a password get ErrWrongPassword.
func (a *authService) Login(ctx context.Context, mobileNumber, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if mobileNumber == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.GetUserByMobile(ctx, mobileNumber)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("mobile_number", mobileNumber).Msg("user search by mobile number failed")
		return models.User{}, fmt.Errorf("user search by mobile number failed: %w", err)
	}

	if user.PasswordHash == "" {
		return models.User{}, ErrWrongPassword
	}
	if err = utils.CompareSecret(user.PasswordHash, password); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// Verify checks code against the pending one-time code of mobileNumber. A
// code is single use: it is deleted once it matched or expired.
func (a *authService) Verify(ctx context.Context, mobileNumber, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	otp, err := a.otpRepository.GetOTP(ctx, mobileNumber)
	if errors.Is(err, store.ErrOTPNotFound) {
		return models.User{}, ErrInvalidVerificationCode
	}
	if err != nil {
		return models.User{}, fmt.Errorf("verification code lookup failed: %w", err)
	}

	if !a.now().Before(otp.ExpiresAt) {
		if err = a.otpRepository.DeleteOTP(ctx, mobileNumber); err != nil {
			log.Err(err).Str("mobile_number", mobileNumber).Msg("expired verification code was not deleted")
		}
		return models.User{}, ErrVerificationCodeExpired
	}

	err = utils.CompareSecret(otp.CodeHash, code)
	if errors.Is(err, utils.ErrSecretMismatch) {
		return models.User{}, ErrInvalidVerificationCode
	}
	if err != nil {
		return models.User{}, err
	}

	if err = a.otpRepository.DeleteOTP(ctx, mobileNumber); err != nil {
		return models.User{}, fmt.Errorf("verification code deletion failed: %w", err)
	}

	user, err := a.userRepository.GetUserByMobile(ctx, mobileNumber)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by mobile number failed: %w", err)
	}
	if user.IsVerified {
		return user, nil
	}

	user.IsVerified = true
	return a.userRepository.UpdateUser(ctx, user)
}

// CompleteRegistration stores the profile form and the documents of a
// verified user. The documents go back to review.
func (a *authService) CompleteRegistration(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if !user.IsVerified {
		return models.User{}, ErrNumberNotVerified
	}

	user.FullName = req.FormData.FullName
	user.Email = req.FormData.Email
	user.Role = req.FormData.Role
	if req.FormData.Password != "" {
		if user.PasswordHash, err = utils.HashSecret(req.FormData.Password); err != nil {
			return models.User{}, err
		}
	}

	if _, err = a.documentService.Save(ctx, user.ID, req.Documents); err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("registration documents were not saved")
		return models.User{}, err
	}

	user.IsDocumentVerified = false
	user.VerificationStatus = models.VerificationPending
	return a.userRepository.UpdateUser(ctx, user)
}

func (a *authService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return a.userRepository.GetUserByID(ctx, userID)
}

// UpdateProfile changes the non-nil fields of req.
func (a *authService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdateRequest) (models.User, error) {
	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	return a.userRepository.UpdateUser(ctx, user)
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

type logCodeSender struct {
	logger *logger.Logger
}

// NewLogCodeSender returns a [CodeSender] that writes codes to the log
// instead of delivering them.
func NewLogCodeSender(logger *logger.Logger) CodeSender {
	return &logCodeSender{logger: logger}
}

func (s *logCodeSender) Send(_ context.Context, mobileNumber, code string) error {
	s.logger.Info().Str("mobile_number", mobileNumber).Str("code", code).Msg("verification code")
	return nil
}
