package grpcsvc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName — полное имя gRPC-сервиса.
const ServiceName = "storefront.v1.StorefrontService"

// Полные имена методов.
const (
	MethodGenerateNumber = "/" + ServiceName + "/GenerateNumber"
	MethodListProducts   = "/" + ServiceName + "/ListProducts"
	MethodListCustomers  = "/" + ServiceName + "/ListCustomers"
	MethodPlaceOrder     = "/" + ServiceName + "/PlaceOrder"
	MethodCanPurchase    = "/" + ServiceName + "/CanPurchase"
)

// StorefrontServer — серверная часть API. Запросы и ответы передаются
// как google.protobuf.Struct, поэтому шаг кодогенерации не нужен.
type StorefrontServer interface {
	GenerateNumber(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCustomers(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PlaceOrder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CanPurchase(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(StorefrontServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(StorefrontServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(StorefrontServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// StorefrontServiceDesc описывает сервис для grpc.Server.
var StorefrontServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateNumber", Handler: unaryHandler(MethodGenerateNumber, StorefrontServer.GenerateNumber)},
		{MethodName: "ListProducts", Handler: unaryHandler(MethodListProducts, StorefrontServer.ListProducts)},
		{MethodName: "ListCustomers", Handler: unaryHandler(MethodListCustomers, StorefrontServer.ListCustomers)},
		{MethodName: "PlaceOrder", Handler: unaryHandler(MethodPlaceOrder, StorefrontServer.PlaceOrder)},
		{MethodName: "CanPurchase", Handler: unaryHandler(MethodCanPurchase, StorefrontServer.CanPurchase)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.proto",
}

// RegisterStorefrontServer регистрирует реализацию на сервере.
func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&StorefrontServiceDesc, srv)
}

// StorefrontClient — тонкий клиент поверх grpc.ClientConnInterface.
type StorefrontClient struct {
	cc grpc.ClientConnInterface
}

// NewStorefrontClient создаёт клиент.
func NewStorefrontClient(cc grpc.ClientConnInterface) *StorefrontClient {
	return &StorefrontClient{cc: cc}
}

func (c *StorefrontClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StorefrontClient) GenerateNumber(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGenerateNumber, in, opts...)
}

func (c *StorefrontClient) ListProducts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListProducts, in, opts...)
}

func (c *StorefrontClient) ListCustomers(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodListCustomers, in, opts...)
}

func (c *StorefrontClient) PlaceOrder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodPlaceOrder, in, opts...)
}

func (c *StorefrontClient) CanPurchase(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodCanPurchase, in, opts...)
}
