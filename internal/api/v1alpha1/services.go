package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

const servicePrefix = "pvmhub.v1alpha1."

// unary adapts a typed server method to a grpc.MethodHandler
func unary[S any, Req any, Resp any](
	fullMethod string,
	call func(srv S, ctx context.Context, req *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke calls a unary method with the JSON codec
func invoke[Resp any](
	ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts ...grpc.CallOption,
) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogService

const (
	CatalogServiceName                        = servicePrefix + "CatalogService"
	CatalogService_SearchItems_FullMethodName = "/" + CatalogServiceName + "/SearchItems"
	CatalogService_GetItem_FullMethodName     = "/" + CatalogServiceName + "/GetItem"
)

// CatalogServiceServer is the server API for CatalogService
type CatalogServiceServer interface {
	SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SearchItems",
			Handler:    unary(CatalogService_SearchItems_FullMethodName, CatalogServiceServer.SearchItems),
		},
		{
			MethodName: "GetItem",
			Handler:    unary(CatalogService_GetItem_FullMethodName, CatalogServiceServer.GetItem),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pvmhub.proto",
}

// RegisterCatalogServiceServer registers srv with s
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// CatalogServiceClient is the client API for CatalogService
type CatalogServiceClient interface {
	SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient creates a CatalogService client on cc
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func (c *catalogServiceClient) SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error) {
	return invoke[SearchItemsResponse](ctx, c.cc, CatalogService_SearchItems_FullMethodName, in, opts...)
}

func (c *catalogServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	return invoke[GetItemResponse](ctx, c.cc, CatalogService_GetItem_FullMethodName, in, opts...)
}

// PresetService

const (
	PresetServiceName                             = servicePrefix + "PresetService"
	PresetService_ListPresets_FullMethodName      = "/" + PresetServiceName + "/ListPresets"
	PresetService_GetPreset_FullMethodName        = "/" + PresetServiceName + "/GetPreset"
	PresetService_SavePreset_FullMethodName       = "/" + PresetServiceName + "/SavePreset"
	PresetService_DeletePreset_FullMethodName     = "/" + PresetServiceName + "/DeletePreset"
	PresetService_EquipItem_FullMethodName        = "/" + PresetServiceName + "/EquipItem"
	PresetService_SetInventoryItem_FullMethodName = "/" + PresetServiceName + "/SetInventoryItem"
)

// PresetServiceServer is the server API for PresetService
type PresetServiceServer interface {
	ListPresets(context.Context, *ListPresetsRequest) (*ListPresetsResponse, error)
	GetPreset(context.Context, *GetPresetRequest) (*GetPresetResponse, error)
	SavePreset(context.Context, *SavePresetRequest) (*SavePresetResponse, error)
	DeletePreset(context.Context, *DeletePresetRequest) (*DeletePresetResponse, error)
	EquipItem(context.Context, *EquipItemRequest) (*EquipItemResponse, error)
	SetInventoryItem(context.Context, *SetInventoryItemRequest) (*SetInventoryItemResponse, error)
}

// PresetService_ServiceDesc is the grpc.ServiceDesc for PresetService
var PresetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PresetServiceName,
	HandlerType: (*PresetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPresets",
			Handler:    unary(PresetService_ListPresets_FullMethodName, PresetServiceServer.ListPresets),
		},
		{
			MethodName: "GetPreset",
			Handler:    unary(PresetService_GetPreset_FullMethodName, PresetServiceServer.GetPreset),
		},
		{
			MethodName: "SavePreset",
			Handler:    unary(PresetService_SavePreset_FullMethodName, PresetServiceServer.SavePreset),
		},
		{
			MethodName: "DeletePreset",
			Handler:    unary(PresetService_DeletePreset_FullMethodName, PresetServiceServer.DeletePreset),
		},
		{
			MethodName: "EquipItem",
			Handler:    unary(PresetService_EquipItem_FullMethodName, PresetServiceServer.EquipItem),
		},
		{
			MethodName: "SetInventoryItem",
			Handler:    unary(PresetService_SetInventoryItem_FullMethodName, PresetServiceServer.SetInventoryItem),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pvmhub.proto",
}

// RegisterPresetServiceServer registers srv with s
func RegisterPresetServiceServer(s grpc.ServiceRegistrar, srv PresetServiceServer) {
	s.RegisterService(&PresetService_ServiceDesc, srv)
}

// PresetServiceClient is the client API for PresetService
type PresetServiceClient interface {
	ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error)
	GetPreset(ctx context.Context, in *GetPresetRequest, opts ...grpc.CallOption) (*GetPresetResponse, error)
	SavePreset(ctx context.Context, in *SavePresetRequest, opts ...grpc.CallOption) (*SavePresetResponse, error)
	DeletePreset(ctx context.Context, in *DeletePresetRequest, opts ...grpc.CallOption) (*DeletePresetResponse, error)
	EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error)
	SetInventoryItem(ctx context.Context, in *SetInventoryItemRequest, opts ...grpc.CallOption) (*SetInventoryItemResponse, error)
}

type presetServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPresetServiceClient creates a PresetService client on cc
func NewPresetServiceClient(cc grpc.ClientConnInterface) PresetServiceClient {
	return &presetServiceClient{cc: cc}
}

func (c *presetServiceClient) ListPresets(ctx context.Context, in *ListPresetsRequest, opts ...grpc.CallOption) (*ListPresetsResponse, error) {
	return invoke[ListPresetsResponse](ctx, c.cc, PresetService_ListPresets_FullMethodName, in, opts...)
}

func (c *presetServiceClient) GetPreset(ctx context.Context, in *GetPresetRequest, opts ...grpc.CallOption) (*GetPresetResponse, error) {
	return invoke[GetPresetResponse](ctx, c.cc, PresetService_GetPreset_FullMethodName, in, opts...)
}

func (c *presetServiceClient) SavePreset(ctx context.Context, in *SavePresetRequest, opts ...grpc.CallOption) (*SavePresetResponse, error) {
	return invoke[SavePresetResponse](ctx, c.cc, PresetService_SavePreset_FullMethodName, in, opts...)
}

func (c *presetServiceClient) DeletePreset(ctx context.Context, in *DeletePresetRequest, opts ...grpc.CallOption) (*DeletePresetResponse, error) {
	return invoke[DeletePresetResponse](ctx, c.cc, PresetService_DeletePreset_FullMethodName, in, opts...)
}

func (c *presetServiceClient) EquipItem(ctx context.Context, in *EquipItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error) {
	return invoke[EquipItemResponse](ctx, c.cc, PresetService_EquipItem_FullMethodName, in, opts...)
}

func (c *presetServiceClient) SetInventoryItem(ctx context.Context, in *SetInventoryItemRequest, opts ...grpc.CallOption) (*SetInventoryItemResponse, error) {
	return invoke[SetInventoryItemResponse](ctx, c.cc, PresetService_SetInventoryItem_FullMethodName, in, opts...)
}

// SimulatorService

const (
	SimulatorServiceName                      = servicePrefix + "SimulatorService"
	SimulatorService_Simulate_FullMethodName  = "/" + SimulatorServiceName + "/Simulate"
	SimulatorService_EquipItem_FullMethodName = "/" + SimulatorServiceName + "/EquipItem"
)

// SimulatorServiceServer is the server API for SimulatorService
type SimulatorServiceServer interface {
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
	EquipItem(context.Context, *SimulatorEquipItemRequest) (*SimulatorEquipItemResponse, error)
}

// SimulatorService_ServiceDesc is the grpc.ServiceDesc for SimulatorService
var SimulatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SimulatorServiceName,
	HandlerType: (*SimulatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Simulate",
			Handler:    unary(SimulatorService_Simulate_FullMethodName, SimulatorServiceServer.Simulate),
		},
		{
			MethodName: "EquipItem",
			Handler:    unary(SimulatorService_EquipItem_FullMethodName, SimulatorServiceServer.EquipItem),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pvmhub.proto",
}

// RegisterSimulatorServiceServer registers srv with s
func RegisterSimulatorServiceServer(s grpc.ServiceRegistrar, srv SimulatorServiceServer) {
	s.RegisterService(&SimulatorService_ServiceDesc, srv)
}

// SimulatorServiceClient is the client API for SimulatorService
type SimulatorServiceClient interface {
	Simulate(ctx context.Context, in *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error)
	EquipItem(ctx context.Context, in *SimulatorEquipItemRequest, opts ...grpc.CallOption) (*SimulatorEquipItemResponse, error)
}

type simulatorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSimulatorServiceClient creates a SimulatorService client on cc
func NewSimulatorServiceClient(cc grpc.ClientConnInterface) SimulatorServiceClient {
	return &simulatorServiceClient{cc: cc}
}

func (c *simulatorServiceClient) Simulate(ctx context.Context, in *SimulateRequest, opts ...grpc.CallOption) (*SimulateResponse, error) {
	return invoke[SimulateResponse](ctx, c.cc, SimulatorService_Simulate_FullMethodName, in, opts...)
}

func (c *simulatorServiceClient) EquipItem(ctx context.Context, in *SimulatorEquipItemRequest, opts ...grpc.CallOption) (*SimulatorEquipItemResponse, error) {
	return invoke[SimulatorEquipItemResponse](ctx, c.cc, SimulatorService_EquipItem_FullMethodName, in, opts...)
}

// GuideService

const (
	GuideServiceName                          = servicePrefix + "GuideService"
	GuideService_ListGuides_FullMethodName    = "/" + GuideServiceName + "/ListGuides"
	GuideService_GetGuide_FullMethodName      = "/" + GuideServiceName + "/GetGuide"
	GuideService_SaveGuide_FullMethodName     = "/" + GuideServiceName + "/SaveGuide"
	GuideService_DeleteGuide_FullMethodName   = "/" + GuideServiceName + "/DeleteGuide"
	GuideService_GenerateDraft_FullMethodName = "/" + GuideServiceName + "/GenerateDraft"
	GuideService_ListBosses_FullMethodName    = "/" + GuideServiceName + "/ListBosses"
)

// GuideServiceServer is the server API for GuideService
type GuideServiceServer interface {
	ListGuides(context.Context, *ListGuidesRequest) (*ListGuidesResponse, error)
	GetGuide(context.Context, *GetGuideRequest) (*GetGuideResponse, error)
	SaveGuide(context.Context, *SaveGuideRequest) (*SaveGuideResponse, error)
	DeleteGuide(context.Context, *DeleteGuideRequest) (*DeleteGuideResponse, error)
	GenerateDraft(context.Context, *GenerateDraftRequest) (*GenerateDraftResponse, error)
	ListBosses(context.Context, *ListBossesRequest) (*ListBossesResponse, error)
}

// GuideService_ServiceDesc is the grpc.ServiceDesc for GuideService
var GuideService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GuideServiceName,
	HandlerType: (*GuideServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListGuides",
			Handler:    unary(GuideService_ListGuides_FullMethodName, GuideServiceServer.ListGuides),
		},
		{
			MethodName: "GetGuide",
			Handler:    unary(GuideService_GetGuide_FullMethodName, GuideServiceServer.GetGuide),
		},
		{
			MethodName: "SaveGuide",
			Handler:    unary(GuideService_SaveGuide_FullMethodName, GuideServiceServer.SaveGuide),
		},
		{
			MethodName: "DeleteGuide",
			Handler:    unary(GuideService_DeleteGuide_FullMethodName, GuideServiceServer.DeleteGuide),
		},
		{
			MethodName: "GenerateDraft",
			Handler:    unary(GuideService_GenerateDraft_FullMethodName, GuideServiceServer.GenerateDraft),
		},
		{
			MethodName: "ListBosses",
			Handler:    unary(GuideService_ListBosses_FullMethodName, GuideServiceServer.ListBosses),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pvmhub.proto",
}

// RegisterGuideServiceServer registers srv with s
func RegisterGuideServiceServer(s grpc.ServiceRegistrar, srv GuideServiceServer) {
	s.RegisterService(&GuideService_ServiceDesc, srv)
}

// GuideServiceClient is the client API for GuideService
type GuideServiceClient interface {
	ListGuides(ctx context.Context, in *ListGuidesRequest, opts ...grpc.CallOption) (*ListGuidesResponse, error)
	GetGuide(ctx context.Context, in *GetGuideRequest, opts ...grpc.CallOption) (*GetGuideResponse, error)
	SaveGuide(ctx context.Context, in *SaveGuideRequest, opts ...grpc.CallOption) (*SaveGuideResponse, error)
	DeleteGuide(ctx context.Context, in *DeleteGuideRequest, opts ...grpc.CallOption) (*DeleteGuideResponse, error)
	GenerateDraft(ctx context.Context, in *GenerateDraftRequest, opts ...grpc.CallOption) (*GenerateDraftResponse, error)
	ListBosses(ctx context.Context, in *ListBossesRequest, opts ...grpc.CallOption) (*ListBossesResponse, error)
}

type guideServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGuideServiceClient creates a GuideService client on cc
func NewGuideServiceClient(cc grpc.ClientConnInterface) GuideServiceClient {
	return &guideServiceClient{cc: cc}
}

func (c *guideServiceClient) ListGuides(ctx context.Context, in *ListGuidesRequest, opts ...grpc.CallOption) (*ListGuidesResponse, error) {
	return invoke[ListGuidesResponse](ctx, c.cc, GuideService_ListGuides_FullMethodName, in, opts...)
}

func (c *guideServiceClient) GetGuide(ctx context.Context, in *GetGuideRequest, opts ...grpc.CallOption) (*GetGuideResponse, error) {
	return invoke[GetGuideResponse](ctx, c.cc, GuideService_GetGuide_FullMethodName, in, opts...)
}

func (c *guideServiceClient) SaveGuide(ctx context.Context, in *SaveGuideRequest, opts ...grpc.CallOption) (*SaveGuideResponse, error) {
	return invoke[SaveGuideResponse](ctx, c.cc, GuideService_SaveGuide_FullMethodName, in, opts...)
}

func (c *guideServiceClient) DeleteGuide(ctx context.Context, in *DeleteGuideRequest, opts ...grpc.CallOption) (*DeleteGuideResponse, error) {
	return invoke[DeleteGuideResponse](ctx, c.cc, GuideService_DeleteGuide_FullMethodName, in, opts...)
}

func (c *guideServiceClient) GenerateDraft(ctx context.Context, in *GenerateDraftRequest, opts ...grpc.CallOption) (*GenerateDraftResponse, error) {
	return invoke[GenerateDraftResponse](ctx, c.cc, GuideService_GenerateDraft_FullMethodName, in, opts...)
}

func (c *guideServiceClient) ListBosses(ctx context.Context, in *ListBossesRequest, opts ...grpc.CallOption) (*ListBossesResponse, error) {
	return invoke[ListBossesResponse](ctx, c.cc, GuideService_ListBosses_FullMethodName, in, opts...)
}
