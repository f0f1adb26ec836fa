// Package carev1 is the wire contract of carelink.v1.CareService: message
// types, the service descriptor and a client. Messages travel as JSON over
// gRPC using the codec registered by this package.
package carev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "carelink.v1.CareService"

const (
	CareService_Register_FullMethodName                = "/carelink.v1.CareService/Register"
	CareService_Login_FullMethodName                   = "/carelink.v1.CareService/Login"
	CareService_Refresh_FullMethodName                 = "/carelink.v1.CareService/Refresh"
	CareService_ListProviders_FullMethodName           = "/carelink.v1.CareService/ListProviders"
	CareService_ListAvailableSlots_FullMethodName      = "/carelink.v1.CareService/ListAvailableSlots"
	CareService_CreateAppointment_FullMethodName       = "/carelink.v1.CareService/CreateAppointment"
	CareService_ListAppointments_FullMethodName        = "/carelink.v1.CareService/ListAppointments"
	CareService_GetAppointment_FullMethodName          = "/carelink.v1.CareService/GetAppointment"
	CareService_UpdateAppointmentStatus_FullMethodName = "/carelink.v1.CareService/UpdateAppointmentStatus"
	CareService_AddVital_FullMethodName                = "/carelink.v1.CareService/AddVital"
	CareService_UpdateVital_FullMethodName             = "/carelink.v1.CareService/UpdateVital"
	CareService_DeleteVital_FullMethodName             = "/carelink.v1.CareService/DeleteVital"
	CareService_ListVitals_FullMethodName              = "/carelink.v1.CareService/ListVitals"
	CareService_AddSymptom_FullMethodName              = "/carelink.v1.CareService/AddSymptom"
	CareService_DeleteSymptom_FullMethodName           = "/carelink.v1.CareService/DeleteSymptom"
	CareService_ListSymptoms_FullMethodName            = "/carelink.v1.CareService/ListSymptoms"
	CareService_HealthSummary_FullMethodName           = "/carelink.v1.CareService/HealthSummary"
)

// CareServiceServer is implemented by the service handler. Implementations
// must embed UnimplementedCareServiceServer.
type CareServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error)
	ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error)
	ListAvailableSlots(context.Context, *ListAvailableSlotsRequest) (*ListAvailableSlotsResponse, error)
	CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error)
	ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error)
	GetAppointment(context.Context, *GetAppointmentRequest) (*GetAppointmentResponse, error)
	UpdateAppointmentStatus(context.Context, *UpdateAppointmentStatusRequest) (*UpdateAppointmentStatusResponse, error)
	AddVital(context.Context, *AddVitalRequest) (*AddVitalResponse, error)
	UpdateVital(context.Context, *UpdateVitalRequest) (*UpdateVitalResponse, error)
	DeleteVital(context.Context, *DeleteVitalRequest) (*DeleteVitalResponse, error)
	ListVitals(context.Context, *ListVitalsRequest) (*ListVitalsResponse, error)
	AddSymptom(context.Context, *AddSymptomRequest) (*AddSymptomResponse, error)
	DeleteSymptom(context.Context, *DeleteSymptomRequest) (*DeleteSymptomResponse, error)
	ListSymptoms(context.Context, *ListSymptomsRequest) (*ListSymptomsResponse, error)
	HealthSummary(context.Context, *HealthSummaryRequest) (*HealthSummaryResponse, error)
	mustEmbedUnimplementedCareServiceServer()
}

type UnimplementedCareServiceServer struct{}

func (UnimplementedCareServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedCareServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedCareServiceServer) Refresh(context.Context, *RefreshRequest) (*RefreshResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Refresh not implemented")
}
func (UnimplementedCareServiceServer) ListProviders(context.Context, *ListProvidersRequest) (*ListProvidersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListProviders not implemented")
}
func (UnimplementedCareServiceServer) ListAvailableSlots(context.Context, *ListAvailableSlotsRequest) (*ListAvailableSlotsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAvailableSlots not implemented")
}
func (UnimplementedCareServiceServer) CreateAppointment(context.Context, *CreateAppointmentRequest) (*CreateAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAppointment not implemented")
}
func (UnimplementedCareServiceServer) ListAppointments(context.Context, *ListAppointmentsRequest) (*ListAppointmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAppointments not implemented")
}
func (UnimplementedCareServiceServer) GetAppointment(context.Context, *GetAppointmentRequest) (*GetAppointmentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAppointment not implemented")
}
func (UnimplementedCareServiceServer) UpdateAppointmentStatus(context.Context, *UpdateAppointmentStatusRequest) (*UpdateAppointmentStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateAppointmentStatus not implemented")
}
func (UnimplementedCareServiceServer) AddVital(context.Context, *AddVitalRequest) (*AddVitalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddVital not implemented")
}
func (UnimplementedCareServiceServer) UpdateVital(context.Context, *UpdateVitalRequest) (*UpdateVitalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateVital not implemented")
}
func (UnimplementedCareServiceServer) DeleteVital(context.Context, *DeleteVitalRequest) (*DeleteVitalResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteVital not implemented")
}
func (UnimplementedCareServiceServer) ListVitals(context.Context, *ListVitalsRequest) (*ListVitalsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListVitals not implemented")
}
func (UnimplementedCareServiceServer) AddSymptom(context.Context, *AddSymptomRequest) (*AddSymptomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSymptom not implemented")
}
func (UnimplementedCareServiceServer) DeleteSymptom(context.Context, *DeleteSymptomRequest) (*DeleteSymptomResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteSymptom not implemented")
}
func (UnimplementedCareServiceServer) ListSymptoms(context.Context, *ListSymptomsRequest) (*ListSymptomsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSymptoms not implemented")
}
func (UnimplementedCareServiceServer) HealthSummary(context.Context, *HealthSummaryRequest) (*HealthSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HealthSummary not implemented")
}
func (UnimplementedCareServiceServer) mustEmbedUnimplementedCareServiceServer() {}

// unary builds the method descriptor for one RPC, running the server's
// interceptor chain around call.
func unary[Req, Resp any](name string, call func(CareServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CareServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(CareServiceServer), ctx, req.(*Req))
			})
		},
	}
}

var CareService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CareServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", CareServiceServer.Register),
		unary("Login", CareServiceServer.Login),
		unary("Refresh", CareServiceServer.Refresh),
		unary("ListProviders", CareServiceServer.ListProviders),
		unary("ListAvailableSlots", CareServiceServer.ListAvailableSlots),
		unary("CreateAppointment", CareServiceServer.CreateAppointment),
		unary("ListAppointments", CareServiceServer.ListAppointments),
		unary("GetAppointment", CareServiceServer.GetAppointment),
		unary("UpdateAppointmentStatus", CareServiceServer.UpdateAppointmentStatus),
		unary("AddVital", CareServiceServer.AddVital),
		unary("UpdateVital", CareServiceServer.UpdateVital),
		unary("DeleteVital", CareServiceServer.DeleteVital),
		unary("ListVitals", CareServiceServer.ListVitals),
		unary("AddSymptom", CareServiceServer.AddSymptom),
		unary("DeleteSymptom", CareServiceServer.DeleteSymptom),
		unary("ListSymptoms", CareServiceServer.ListSymptoms),
		unary("HealthSummary", CareServiceServer.HealthSummary),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carelink/v1/care",
}

func RegisterCareServiceServer(s grpc.ServiceRegistrar, srv CareServiceServer) {
	s.RegisterService(&CareService_ServiceDesc, srv)
}

type CareServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error)
	ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error)
	ListAvailableSlots(ctx context.Context, in *ListAvailableSlotsRequest, opts ...grpc.CallOption) (*ListAvailableSlotsResponse, error)
	CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error)
	ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error)
	GetAppointment(ctx context.Context, in *GetAppointmentRequest, opts ...grpc.CallOption) (*GetAppointmentResponse, error)
	UpdateAppointmentStatus(ctx context.Context, in *UpdateAppointmentStatusRequest, opts ...grpc.CallOption) (*UpdateAppointmentStatusResponse, error)
	AddVital(ctx context.Context, in *AddVitalRequest, opts ...grpc.CallOption) (*AddVitalResponse, error)
	UpdateVital(ctx context.Context, in *UpdateVitalRequest, opts ...grpc.CallOption) (*UpdateVitalResponse, error)
	DeleteVital(ctx context.Context, in *DeleteVitalRequest, opts ...grpc.CallOption) (*DeleteVitalResponse, error)
	ListVitals(ctx context.Context, in *ListVitalsRequest, opts ...grpc.CallOption) (*ListVitalsResponse, error)
	AddSymptom(ctx context.Context, in *AddSymptomRequest, opts ...grpc.CallOption) (*AddSymptomResponse, error)
	DeleteSymptom(ctx context.Context, in *DeleteSymptomRequest, opts ...grpc.CallOption) (*DeleteSymptomResponse, error)
	ListSymptoms(ctx context.Context, in *ListSymptomsRequest, opts ...grpc.CallOption) (*ListSymptomsResponse, error)
	HealthSummary(ctx context.Context, in *HealthSummaryRequest, opts ...grpc.CallOption) (*HealthSummaryResponse, error)
}

type careServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCareServiceClient returns a client whose calls always use the JSON codec.
func NewCareServiceClient(cc grpc.ClientConnInterface) CareServiceClient {
	return &careServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *careServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, CareService_Register_FullMethodName, in, opts)
}

func (c *careServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, CareService_Login_FullMethodName, in, opts)
}

func (c *careServiceClient) Refresh(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*RefreshResponse, error) {
	return invoke[RefreshResponse](ctx, c.cc, CareService_Refresh_FullMethodName, in, opts)
}

func (c *careServiceClient) ListProviders(ctx context.Context, in *ListProvidersRequest, opts ...grpc.CallOption) (*ListProvidersResponse, error) {
	return invoke[ListProvidersResponse](ctx, c.cc, CareService_ListProviders_FullMethodName, in, opts)
}

func (c *careServiceClient) ListAvailableSlots(ctx context.Context, in *ListAvailableSlotsRequest, opts ...grpc.CallOption) (*ListAvailableSlotsResponse, error) {
	return invoke[ListAvailableSlotsResponse](ctx, c.cc, CareService_ListAvailableSlots_FullMethodName, in, opts)
}

func (c *careServiceClient) CreateAppointment(ctx context.Context, in *CreateAppointmentRequest, opts ...grpc.CallOption) (*CreateAppointmentResponse, error) {
	return invoke[CreateAppointmentResponse](ctx, c.cc, CareService_CreateAppointment_FullMethodName, in, opts)
}

func (c *careServiceClient) ListAppointments(ctx context.Context, in *ListAppointmentsRequest, opts ...grpc.CallOption) (*ListAppointmentsResponse, error) {
	return invoke[ListAppointmentsResponse](ctx, c.cc, CareService_ListAppointments_FullMethodName, in, opts)
}

func (c *careServiceClient) GetAppointment(ctx context.Context, in *GetAppointmentRequest, opts ...grpc.CallOption) (*GetAppointmentResponse, error) {
	return invoke[GetAppointmentResponse](ctx, c.cc, CareService_GetAppointment_FullMethodName, in, opts)
}

func (c *careServiceClient) UpdateAppointmentStatus(ctx context.Context, in *UpdateAppointmentStatusRequest, opts ...grpc.CallOption) (*UpdateAppointmentStatusResponse, error) {
	return invoke[UpdateAppointmentStatusResponse](ctx, c.cc, CareService_UpdateAppointmentStatus_FullMethodName, in, opts)
}

func (c *careServiceClient) AddVital(ctx context.Context, in *AddVitalRequest, opts ...grpc.CallOption) (*AddVitalResponse, error) {
	return invoke[AddVitalResponse](ctx, c.cc, CareService_AddVital_FullMethodName, in, opts)
}

func (c *careServiceClient) UpdateVital(ctx context.Context, in *UpdateVitalRequest, opts ...grpc.CallOption) (*UpdateVitalResponse, error) {
	return invoke[UpdateVitalResponse](ctx, c.cc, CareService_UpdateVital_FullMethodName, in, opts)
}

func (c *careServiceClient) DeleteVital(ctx context.Context, in *DeleteVitalRequest, opts ...grpc.CallOption) (*DeleteVitalResponse, error) {
	return invoke[DeleteVitalResponse](ctx, c.cc, CareService_DeleteVital_FullMethodName, in, opts)
}

func (c *careServiceClient) ListVitals(ctx context.Context, in *ListVitalsRequest, opts ...grpc.CallOption) (*ListVitalsResponse, error) {
	return invoke[ListVitalsResponse](ctx, c.cc, CareService_ListVitals_FullMethodName, in, opts)
}

func (c *careServiceClient) AddSymptom(ctx context.Context, in *AddSymptomRequest, opts ...grpc.CallOption) (*AddSymptomResponse, error) {
	return invoke[AddSymptomResponse](ctx, c.cc, CareService_AddSymptom_FullMethodName, in, opts)
}

func (c *careServiceClient) DeleteSymptom(ctx context.Context, in *DeleteSymptomRequest, opts ...grpc.CallOption) (*DeleteSymptomResponse, error) {
	return invoke[DeleteSymptomResponse](ctx, c.cc, CareService_DeleteSymptom_FullMethodName, in, opts)
}

func (c *careServiceClient) ListSymptoms(ctx context.Context, in *ListSymptomsRequest, opts ...grpc.CallOption) (*ListSymptomsResponse, error) {
	return invoke[ListSymptomsResponse](ctx, c.cc, CareService_ListSymptoms_FullMethodName, in, opts)
}

func (c *careServiceClient) HealthSummary(ctx context.Context, in *HealthSummaryRequest, opts ...grpc.CallOption) (*HealthSummaryResponse, error) {
	return invoke[HealthSummaryResponse](ctx, c.cc, CareService_HealthSummary_FullMethodName, in, opts)
}
