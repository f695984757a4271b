// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: internal/api/proto/rental/rental.proto

package rental

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	RentalService_CreateRental_FullMethodName       = "/rental.RentalService/CreateRental"
	RentalService_StartRental_FullMethodName        = "/rental.RentalService/StartRental"
	RentalService_CompleteRental_FullMethodName     = "/rental.RentalService/CompleteRental"
	RentalService_CancelRental_FullMethodName       = "/rental.RentalService/CancelRental"
	RentalService_GetRental_FullMethodName          = "/rental.RentalService/GetRental"
	RentalService_ListRentals_FullMethodName        = "/rental.RentalService/ListRentals"
	RentalService_ListOverdueRentals_FullMethodName = "/rental.RentalService/ListOverdueRentals"
	RentalService_ListCurrentRentals_FullMethodName = "/rental.RentalService/ListCurrentRentals"
	RentalService_GetRentalStats_FullMethodName     = "/rental.RentalService/GetRentalStats"
)

// RentalServiceClient is the client API for RentalService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RentalServiceClient interface {
	CreateRental(ctx context.Context, in *CreateRentalRequest, opts ...grpc.CallOption) (*CreateRentalResponse, error)
	StartRental(ctx context.Context, in *StartRentalRequest, opts ...grpc.CallOption) (*StartRentalResponse, error)
	CompleteRental(ctx context.Context, in *CompleteRentalRequest, opts ...grpc.CallOption) (*CompleteRentalResponse, error)
	CancelRental(ctx context.Context, in *CancelRentalRequest, opts ...grpc.CallOption) (*CancelRentalResponse, error)
	GetRental(ctx context.Context, in *GetRentalRequest, opts ...grpc.CallOption) (*GetRentalResponse, error)
	ListRentals(ctx context.Context, in *ListRentalsRequest, opts ...grpc.CallOption) (*ListRentalsResponse, error)
	ListOverdueRentals(ctx context.Context, in *ListOverdueRentalsRequest, opts ...grpc.CallOption) (*ListOverdueRentalsResponse, error)
	ListCurrentRentals(ctx context.Context, in *ListCurrentRentalsRequest, opts ...grpc.CallOption) (*ListCurrentRentalsResponse, error)
	GetRentalStats(ctx context.Context, in *GetRentalStatsRequest, opts ...grpc.CallOption) (*GetRentalStatsResponse, error)
}

type rentalServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRentalServiceClient(cc grpc.ClientConnInterface) RentalServiceClient {
	return &rentalServiceClient{cc}
}

func (c *rentalServiceClient) CreateRental(ctx context.Context, in *CreateRentalRequest, opts ...grpc.CallOption) (*CreateRentalResponse, error) {
	out := new(CreateRentalResponse)
	err := c.cc.Invoke(ctx, RentalService_CreateRental_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) StartRental(ctx context.Context, in *StartRentalRequest, opts ...grpc.CallOption) (*StartRentalResponse, error) {
	out := new(StartRentalResponse)
	err := c.cc.Invoke(ctx, RentalService_StartRental_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) CompleteRental(ctx context.Context, in *CompleteRentalRequest, opts ...grpc.CallOption) (*CompleteRentalResponse, error) {
	out := new(CompleteRentalResponse)
	err := c.cc.Invoke(ctx, RentalService_CompleteRental_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) CancelRental(ctx context.Context, in *CancelRentalRequest, opts ...grpc.CallOption) (*CancelRentalResponse, error) {
	out := new(CancelRentalResponse)
	err := c.cc.Invoke(ctx, RentalService_CancelRental_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) GetRental(ctx context.Context, in *GetRentalRequest, opts ...grpc.CallOption) (*GetRentalResponse, error) {
	out := new(GetRentalResponse)
	err := c.cc.Invoke(ctx, RentalService_GetRental_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) ListRentals(ctx context.Context, in *ListRentalsRequest, opts ...grpc.CallOption) (*ListRentalsResponse, error) {
	out := new(ListRentalsResponse)
	err := c.cc.Invoke(ctx, RentalService_ListRentals_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) ListOverdueRentals(ctx context.Context, in *ListOverdueRentalsRequest, opts ...grpc.CallOption) (*ListOverdueRentalsResponse, error) {
	out := new(ListOverdueRentalsResponse)
	err := c.cc.Invoke(ctx, RentalService_ListOverdueRentals_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) ListCurrentRentals(ctx context.Context, in *ListCurrentRentalsRequest, opts ...grpc.CallOption) (*ListCurrentRentalsResponse, error) {
	out := new(ListCurrentRentalsResponse)
	err := c.cc.Invoke(ctx, RentalService_ListCurrentRentals_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rentalServiceClient) GetRentalStats(ctx context.Context, in *GetRentalStatsRequest, opts ...grpc.CallOption) (*GetRentalStatsResponse, error) {
	out := new(GetRentalStatsResponse)
	err := c.cc.Invoke(ctx, RentalService_GetRentalStats_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RentalServiceServer is the server API for RentalService service.
// All implementations must embed UnimplementedRentalServiceServer
// for forward compatibility
type RentalServiceServer interface {
	CreateRental(context.Context, *CreateRentalRequest) (*CreateRentalResponse, error)
	StartRental(context.Context, *StartRentalRequest) (*StartRentalResponse, error)
	CompleteRental(context.Context, *CompleteRentalRequest) (*CompleteRentalResponse, error)
	CancelRental(context.Context, *CancelRentalRequest) (*CancelRentalResponse, error)
	GetRental(context.Context, *GetRentalRequest) (*GetRentalResponse, error)
	ListRentals(context.Context, *ListRentalsRequest) (*ListRentalsResponse, error)
	ListOverdueRentals(context.Context, *ListOverdueRentalsRequest) (*ListOverdueRentalsResponse, error)
	ListCurrentRentals(context.Context, *ListCurrentRentalsRequest) (*ListCurrentRentalsResponse, error)
	GetRentalStats(context.Context, *GetRentalStatsRequest) (*GetRentalStatsResponse, error)
	mustEmbedUnimplementedRentalServiceServer()
}

// UnimplementedRentalServiceServer must be embedded to have forward compatible implementations.
type UnimplementedRentalServiceServer struct {
}

func (UnimplementedRentalServiceServer) CreateRental(context.Context, *CreateRentalRequest) (*CreateRentalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRental not implemented")
}
func (UnimplementedRentalServiceServer) StartRental(context.Context, *StartRentalRequest) (*StartRentalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartRental not implemented")
}
func (UnimplementedRentalServiceServer) CompleteRental(context.Context, *CompleteRentalRequest) (*CompleteRentalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteRental not implemented")
}
func (UnimplementedRentalServiceServer) CancelRental(context.Context, *CancelRentalRequest) (*CancelRentalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelRental not implemented")
}
func (UnimplementedRentalServiceServer) GetRental(context.Context, *GetRentalRequest) (*GetRentalResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRental not implemented")
}
func (UnimplementedRentalServiceServer) ListRentals(context.Context, *ListRentalsRequest) (*ListRentalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRentals not implemented")
}
func (UnimplementedRentalServiceServer) ListOverdueRentals(context.Context, *ListOverdueRentalsRequest) (*ListOverdueRentalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListOverdueRentals not implemented")
}
func (UnimplementedRentalServiceServer) ListCurrentRentals(context.Context, *ListCurrentRentalsRequest) (*ListCurrentRentalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListCurrentRentals not implemented")
}
func (UnimplementedRentalServiceServer) GetRentalStats(context.Context, *GetRentalStatsRequest) (*GetRentalStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRentalStats not implemented")
}
func (UnimplementedRentalServiceServer) mustEmbedUnimplementedRentalServiceServer() {}

// UnsafeRentalServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RentalServiceServer will
// result in compilation errors.
type UnsafeRentalServiceServer interface {
	mustEmbedUnimplementedRentalServiceServer()
}

func RegisterRentalServiceServer(s grpc.ServiceRegistrar, srv RentalServiceServer) {
	s.RegisterService(&RentalService_ServiceDesc, srv)
}

func _RentalService_CreateRental_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRentalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).CreateRental(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_CreateRental_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).CreateRental(ctx, req.(*CreateRentalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_StartRental_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartRentalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).StartRental(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_StartRental_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).StartRental(ctx, req.(*StartRentalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_CompleteRental_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteRentalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).CompleteRental(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_CompleteRental_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).CompleteRental(ctx, req.(*CompleteRentalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_CancelRental_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelRentalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).CancelRental(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_CancelRental_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).CancelRental(ctx, req.(*CancelRentalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_GetRental_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRentalRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).GetRental(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_GetRental_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).GetRental(ctx, req.(*GetRentalRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_ListRentals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRentalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).ListRentals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_ListRentals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).ListRentals(ctx, req.(*ListRentalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_ListOverdueRentals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListOverdueRentalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).ListOverdueRentals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_ListOverdueRentals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).ListOverdueRentals(ctx, req.(*ListOverdueRentalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_ListCurrentRentals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCurrentRentalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).ListCurrentRentals(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_ListCurrentRentals_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).ListCurrentRentals(ctx, req.(*ListCurrentRentalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RentalService_GetRentalStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRentalStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RentalServiceServer).GetRentalStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RentalService_GetRentalStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RentalServiceServer).GetRentalStats(ctx, req.(*GetRentalStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RentalService_ServiceDesc is the grpc.ServiceDesc for RentalService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RentalService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "rental.RentalService",
	HandlerType: (*RentalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRental",
			Handler:    _RentalService_CreateRental_Handler,
		},
		{
			MethodName: "StartRental",
			Handler:    _RentalService_StartRental_Handler,
		},
		{
			MethodName: "CompleteRental",
			Handler:    _RentalService_CompleteRental_Handler,
		},
		{
			MethodName: "CancelRental",
			Handler:    _RentalService_CancelRental_Handler,
		},
		{
			MethodName: "GetRental",
			Handler:    _RentalService_GetRental_Handler,
		},
		{
			MethodName: "ListRentals",
			Handler:    _RentalService_ListRentals_Handler,
		},
		{
			MethodName: "ListOverdueRentals",
			Handler:    _RentalService_ListOverdueRentals_Handler,
		},
		{
			MethodName: "ListCurrentRentals",
			Handler:    _RentalService_ListCurrentRentals_Handler,
		},
		{
			MethodName: "GetRentalStats",
			Handler:    _RentalService_GetRentalStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/api/proto/rental/rental.proto",
}
