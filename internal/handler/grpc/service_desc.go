package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-user-keeper/models"
)

// Dispatcher service identifiers.
const (
	DispatcherServiceName = "userkeeper.v1.Dispatcher"
	DispatchFullMethod    = "/" + DispatcherServiceName + "/Dispatch"
)

// DispatcherServer is the server API of the Dispatcher service.
type DispatcherServer interface {
	Dispatch(ctx context.Context, in *models.DispatchRequest) (*models.DispatchResponse, error)
}

// DispatcherServiceDesc describes the Dispatcher service for
// [grpc.ServiceRegistrar.RegisterService].
var DispatcherServiceDesc = grpc.ServiceDesc{
	ServiceName: DispatcherServiceName,
	HandlerType: (*DispatcherServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dispatch",
			Handler:    dispatchHandler,
		},
	},
	Streams: []grpc.StreamDesc{},
}

func dispatchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.DispatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(DispatcherServer).Dispatch(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DispatchFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DispatcherServer).Dispatch(ctx, req.(*models.DispatchRequest))
	}

	return interceptor(ctx, in, info, handler)
}

// DispatcherClient is the client API of the Dispatcher service.
type DispatcherClient struct {
	cc grpc.ClientConnInterface
}

// NewDispatcherClient returns a client calling through cc.
func NewDispatcherClient(cc grpc.ClientConnInterface) *DispatcherClient {
	return &DispatcherClient{cc: cc}
}

// Dispatch sends in with the JSON codec.
func (c *DispatcherClient) Dispatch(ctx context.Context, in *models.DispatchRequest, opts ...grpc.CallOption) (*models.DispatchResponse, error) {
	out := new(models.DispatchResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)

	if err := c.cc.Invoke(ctx, DispatchFullMethod, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
