package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgabilities.v1alpha1.AbilityService"

// Method names
const (
	MethodRegisterCombatant = "RegisterCombatant"
	MethodEquip             = "Equip"
	MethodSwapWeapons       = "SwapWeapons"
	MethodActivateAbility   = "ActivateAbility"
	MethodTick              = "Tick"
	MethodGetCombatant      = "GetCombatant"
	MethodRemoveCombatant   = "RemoveCombatant"
)

// AbilityServiceServer is the server API. Every payload is a
// google.protobuf.Struct carrying the JSON shape documented on each request
// type.
type AbilityServiceServer interface {
	RegisterCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Equip(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SwapWeapons(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ActivateAbility(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Tick(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverCall func(srv AbilityServiceServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call serverCall) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AbilityServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(AbilityServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AbilityServiceDesc describes the service for grpc.Server registration
var AbilityServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AbilityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodRegisterCombatant, Handler: unaryHandler(MethodRegisterCombatant, AbilityServiceServer.RegisterCombatant)},
		{MethodName: MethodEquip, Handler: unaryHandler(MethodEquip, AbilityServiceServer.Equip)},
		{MethodName: MethodSwapWeapons, Handler: unaryHandler(MethodSwapWeapons, AbilityServiceServer.SwapWeapons)},
		{MethodName: MethodActivateAbility, Handler: unaryHandler(MethodActivateAbility, AbilityServiceServer.ActivateAbility)},
		{MethodName: MethodTick, Handler: unaryHandler(MethodTick, AbilityServiceServer.Tick)},
		{MethodName: MethodGetCombatant, Handler: unaryHandler(MethodGetCombatant, AbilityServiceServer.GetCombatant)},
		{MethodName: MethodRemoveCombatant, Handler: unaryHandler(MethodRemoveCombatant, AbilityServiceServer.RemoveCombatant)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgabilities/v1alpha1/abilities.proto",
}

// RegisterAbilityServiceServer registers srv with s
func RegisterAbilityServiceServer(s grpc.ServiceRegistrar, srv AbilityServiceServer) {
	s.RegisterService(&AbilityServiceDesc, srv)
}

// AbilityServiceClient calls the service by method name
type AbilityServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type abilityServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAbilityServiceClient creates a client over cc
func NewAbilityServiceClient(cc grpc.ClientConnInterface) AbilityServiceClient {
	return &abilityServiceClient{cc: cc}
}

func (c *abilityServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
