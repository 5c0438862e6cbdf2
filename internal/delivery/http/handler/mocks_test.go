package handler

import (
	"context"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SessionResponse), args.Error(1)
}

func (m *MockAuthUsecase) Signup(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) GetAll(ctx context.Context, req *dto.AppointmentListRequest) ([]dto.AppointmentResponse, *response.Meta, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]dto.AppointmentResponse), args.Get(1).(*response.Meta), args.Error(2)
}

func (m *MockAppointmentUsecase) GetByID(ctx context.Context, id int64) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) GetByPatient(ctx context.Context, patientRef int64) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, patientRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) GetByDoctor(ctx context.Context, doctorRef int64) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, doctorRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentCreatedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentCreatedResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, req *dto.UpdateAppointmentRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateAppointmentStatusRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) GetStatistics(ctx context.Context, req *dto.AppointmentStatisticsRequest) (*entity.AppointmentStats, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AppointmentStats), args.Error(1)
}

type MockQueueUsecase struct {
	mock.Mock
}

func (m *MockQueueUsecase) GetAll(ctx context.Context, req *dto.QueueListRequest) ([]dto.QueueEntryResponse, *response.Meta, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]dto.QueueEntryResponse), args.Get(1).(*response.Meta), args.Error(2)
}

func (m *MockQueueUsecase) GetByID(ctx context.Context, id int64) (*dto.QueueEntryResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueUsecase) GetActive(ctx context.Context) ([]dto.QueueEntryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueUsecase) GetByDate(ctx context.Context, queueDate string) ([]dto.QueueEntryResponse, error) {
	args := m.Called(ctx, queueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.QueueEntryResponse), args.Error(1)
}

func (m *MockQueueUsecase) Create(ctx context.Context, req *dto.CreateQueueRequest) (*dto.QueueTicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QueueTicketResponse), args.Error(1)
}

func (m *MockQueueUsecase) Update(ctx context.Context, req *dto.UpdateQueueRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockQueueUsecase) UpdateStatus(ctx context.Context, req *dto.UpdateQueueStatusRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockQueueUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQueueUsecase) CallNext(ctx context.Context, req *dto.CallNextQueueRequest) (*dto.QueueTicketResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QueueTicketResponse), args.Error(1)
}

func (m *MockQueueUsecase) GetStatistics(ctx context.Context) (*entity.QueueStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.QueueStats), args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) GetAll(ctx context.Context, query usecase.PageQuery) (*usecase.PagedResult[dto.PatientResponse], error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PagedResult[dto.PatientResponse]), args.Error(1)
}

func (m *MockPatientUsecase) GetByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientResponse), args.Error(1)
}

func (m *MockPatientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientRegisteredResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientRegisteredResponse), args.Error(1)
}

func (m *MockPatientUsecase) Create(ctx context.Context, req *dto.RegisterPatientRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientUsecase) Update(ctx context.Context, id int64, req *dto.UpdatePatientRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockPatientUsecase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLogUsecase struct {
	mock.Mock
}

func (m *MockAuditLogUsecase) GetAll(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) GetStatistics(ctx context.Context) (*entity.AuditLogStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLogStats), args.Error(1)
}

func (m *MockAuditLogUsecase) GetUsers(ctx context.Context) ([]dto.AuditActorResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AuditActorResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) ClearOldLogs(ctx context.Context, days int) (*dto.ClearOldLogsResponse, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ClearOldLogsResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) Export(ctx context.Context, req *dto.ExportAuditLogsRequest) (*dto.AuditLogExport, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogExport), args.Error(1)
}
