package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/clock"
	"hospital-backend/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound      = errors.New("patient not found")
	ErrEmailRequired        = errors.New("email is required when creating an account")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrPatientCodeExhausted = errors.New("could not generate a unique patient code")
	ErrPatientInUse         = errors.New("patient has appointments or queue entries")
)

const (
	defaultPatientGender = "Other"
	patientCodeAttempts  = 20
	usernameFallback     = "patient"
)

var usernameInvalidChars = regexp.MustCompile(`[^a-z0-9._-]`)

type PatientUsecase interface {
	ResourceReader[dto.PatientResponse]
	ResourceWriter[dto.RegisterPatientRequest, dto.UpdatePatientRequest]
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientRegisteredResponse, error)
}

type patientUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	patientRepo     repository.PatientRepository
	audit           service.AuditService
	mailer          service.MailDispatcher
	defaultPassword string
	clock           clock.Clock
	generateCode    func() string
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
	mailer service.MailDispatcher,
	defaultPassword string,
	clk clock.Clock,
) PatientUsecase {
	return &patientUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		patientRepo:     patientRepo,
		audit:           audit,
		mailer:          mailer,
		defaultPassword: defaultPassword,
		clock:           clk,
		generateCode:    randomPatientCode,
	}
}

func randomPatientCode() string {
	return fmt.Sprintf("P%04d", rand.IntN(9999)+1)
}

func (u *patientUsecase) GetAll(ctx context.Context, query PageQuery) (*PagedResult[dto.PatientResponse], error) {
	page, limit := normalizePage(query.Page, query.Limit)

	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), &entity.PatientFilter{
		Search: query.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return &PagedResult[dto.PatientResponse]{
		Items: converter.PatientsToResponses(patients),
		Meta:  response.NewMeta(page, limit, total),
	}, nil
}

func (u *patientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// Register creates the patient record and, with CreateAccount, a patient
// login plus profile in the same transaction. The welcome mail is sent after
// commit and its outcome never fails the registration.
func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientRegisteredResponse, error) {
	email := strings.TrimSpace(req.Email)
	if req.CreateAccount && email == "" {
		return nil, ErrEmailRequired
	}

	dateOfBirth, err := parseDate(req.DateOfBirth, u.clock.Now().Location())
	if err != nil {
		return nil, err
	}

	gender := req.Gender
	if gender == "" {
		gender = defaultPatientGender
	}

	db := u.db.WithContext(ctx)

	var username string
	if req.CreateAccount {
		username, err = u.uniqueUsername(db, email)
		if err != nil {
			return nil, err
		}
	}

	tx := db.Begin()
	defer tx.Rollback()

	patient := &entity.Patient{
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		MiddleName:            req.MiddleName,
		DateOfBirth:           dateOfBirth,
		Gender:                gender,
		PhoneNumber:           req.PhoneNumber,
		Email:                 email,
		Address:               req.Address,
		BloodType:             req.BloodType,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		IsActive:              true,
	}

	if req.CreateAccount {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.defaultPassword), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}

		user := &entity.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			Role:         entity.RolePatient,
			Status:       entity.UserStatusActive,
		}
		if err := u.userRepo.Create(tx, user); err != nil {
			switch {
			case isDuplicateKeyError(err, "email"):
				return nil, ErrEmailAlreadyExists
			case isDuplicateKeyError(err, "username"):
				return nil, ErrUsernameTaken
			}
			u.log.Warnf("Failed to create patient user: %+v", err)
			return nil, err
		}

		profile := &entity.UserProfile{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    gender,
			BirthDate: &dateOfBirth,
			Phone:     req.PhoneNumber,
			Address:   req.Address,
		}
		if err := u.profileRepo.Create(tx, profile); err != nil {
			u.log.Warnf("Failed to create patient profile: %+v", err)
			return nil, err
		}

		patient.UserID = &user.ID
	}

	code, err := u.uniquePatientCode(tx)
	if err != nil {
		return nil, err
	}
	patient.PatientCode = code

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: #%d (%s)", patient.ID, patient.PatientCode)
	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionRegisterPatient,
		fmt.Sprintf("Registered patient: %s %s (Code: %s)", patient.FirstName, patient.LastName, patient.PatientCode),
	))

	result := &dto.PatientRegisteredResponse{
		PatientID:   patient.ID,
		PatientCode: patient.PatientCode,
	}
	if req.CreateAccount {
		result.Username = &username
		result.EmailSent = u.mailer.SendPatientWelcome(ctx, service.PatientWelcome{
			Email:             email,
			FirstName:         patient.FirstName,
			LastName:          patient.LastName,
			PatientCode:       patient.PatientCode,
			Username:          username,
			TemporaryPassword: u.defaultPassword,
		})
	}

	return result, nil
}

// Create registers the patient and returns only the new id.
func (u *patientUsecase) Create(ctx context.Context, req *dto.RegisterPatientRequest) (int64, error) {
	registered, err := u.Register(ctx, req)
	if err != nil {
		return 0, err
	}
	return registered.PatientID, nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) error {
	db := u.db.WithContext(ctx)

	patient, err := u.patientRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient by id: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if req.DateOfBirth != nil {
		if patient.DateOfBirth, err = parseDate(*req.DateOfBirth, u.clock.Now().Location()); err != nil {
			return err
		}
	}
	assignString(&patient.FirstName, req.FirstName)
	assignString(&patient.LastName, req.LastName)
	assignString(&patient.MiddleName, req.MiddleName)
	assignString(&patient.Gender, req.Gender)
	assignString(&patient.PhoneNumber, req.PhoneNumber)
	assignString(&patient.Email, req.Email)
	assignString(&patient.Address, req.Address)
	assignString(&patient.BloodType, req.BloodType)
	assignString(&patient.EmergencyContactName, req.EmergencyContactName)
	assignString(&patient.EmergencyContactPhone, req.EmergencyContactPhone)
	if req.IsActive != nil {
		patient.IsActive = *req.IsActive
	}

	if err := u.patientRepo.Update(db, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return err
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionUpdatePatient,
		fmt.Sprintf("Updated patient: %s (Code: %s)", patient.FullName(), patient.PatientCode),
	))

	return nil
}

// Delete removes the patient record. Patients still referenced by
// appointments or queue entries are kept.
func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	rows, err := u.patientRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		if isForeignKeyError(err, "patient") {
			return ErrPatientInUse
		}
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	u.audit.Record(ctx, newAuditEntry(ctx,
		entity.AuditActionDeletePatient,
		fmt.Sprintf("Deleted patient #%d", id),
	))

	return nil
}

func assignString(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// uniqueUsername derives a username from the email local part, appending
// 1, 2, ... until it is free.
func (u *patientUsecase) uniqueUsername(db *gorm.DB, email string) (string, error) {
	base := usernameFromEmail(email)

	candidate := base
	for suffix := 1; ; suffix++ {
		exists, err := u.userRepo.UsernameExists(db, candidate)
		if err != nil {
			u.log.Warnf("Failed to check username: %+v", err)
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = base + strconv.Itoa(suffix)
	}
}

func usernameFromEmail(email string) string {
	local := strings.ToLower(email)
	if at := strings.Index(local, "@"); at >= 0 {
		local = local[:at]
	}
	local = usernameInvalidChars.ReplaceAllString(local, "")
	if local == "" {
		return usernameFallback
	}
	return local
}

func (u *patientUsecase) uniquePatientCode(db *gorm.DB) (string, error) {
	for attempt := 0; attempt < patientCodeAttempts; attempt++ {
		code := u.generateCode()
		exists, err := u.patientRepo.CodeExists(db, code)
		if err != nil {
			u.log.Warnf("Failed to check patient code: %+v", err)
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrPatientCodeExhausted
}
