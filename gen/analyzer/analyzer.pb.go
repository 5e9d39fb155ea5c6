// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: analyzer.proto

package analyzer

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalyzeFrameRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ImageJpeg     []byte                 `protobuf:"bytes,1,opt,name=image_jpeg,json=imageJpeg,proto3" json:"image_jpeg,omitempty"`
	Seq           uint64                 `protobuf:"varint,2,opt,name=seq,proto3" json:"seq,omitempty"`
	Width         int32                  `protobuf:"varint,3,opt,name=width,proto3" json:"width,omitempty"`
	Height        int32                  `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeFrameRequest) Reset() {
	*x = AnalyzeFrameRequest{}
	mi := &file_analyzer_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeFrameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeFrameRequest) ProtoMessage() {}

func (x *AnalyzeFrameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeFrameRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeFrameRequest) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeFrameRequest) GetImageJpeg() []byte {
	if x != nil {
		return x.ImageJpeg
	}
	return nil
}

func (x *AnalyzeFrameRequest) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *AnalyzeFrameRequest) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *AnalyzeFrameRequest) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type Keypoint struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Joint         string                 `protobuf:"bytes,1,opt,name=joint,proto3" json:"joint,omitempty"`
	XPx           float64                `protobuf:"fixed64,2,opt,name=x_px,json=xPx,proto3" json:"x_px,omitempty"`
	YPx           float64                `protobuf:"fixed64,3,opt,name=y_px,json=yPx,proto3" json:"y_px,omitempty"`
	Confidence    float64                `protobuf:"fixed64,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Keypoint) Reset() {
	*x = Keypoint{}
	mi := &file_analyzer_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Keypoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Keypoint) ProtoMessage() {}

func (x *Keypoint) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Keypoint.ProtoReflect.Descriptor instead.
func (*Keypoint) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{1}
}

func (x *Keypoint) GetJoint() string {
	if x != nil {
		return x.Joint
	}
	return ""
}

func (x *Keypoint) GetXPx() float64 {
	if x != nil {
		return x.XPx
	}
	return 0
}

func (x *Keypoint) GetYPx() float64 {
	if x != nil {
		return x.YPx
	}
	return 0
}

func (x *Keypoint) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type Box struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	X1Px          float64                `protobuf:"fixed64,1,opt,name=x1_px,json=x1Px,proto3" json:"x1_px,omitempty"`
	Y1Px          float64                `protobuf:"fixed64,2,opt,name=y1_px,json=y1Px,proto3" json:"y1_px,omitempty"`
	X2Px          float64                `protobuf:"fixed64,3,opt,name=x2_px,json=x2Px,proto3" json:"x2_px,omitempty"`
	Y2Px          float64                `protobuf:"fixed64,4,opt,name=y2_px,json=y2Px,proto3" json:"y2_px,omitempty"`
	Confidence    float64                `protobuf:"fixed64,5,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Box) Reset() {
	*x = Box{}
	mi := &file_analyzer_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Box) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Box) ProtoMessage() {}

func (x *Box) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Box.ProtoReflect.Descriptor instead.
func (*Box) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{2}
}

func (x *Box) GetX1Px() float64 {
	if x != nil {
		return x.X1Px
	}
	return 0
}

func (x *Box) GetY1Px() float64 {
	if x != nil {
		return x.Y1Px
	}
	return 0
}

func (x *Box) GetX2Px() float64 {
	if x != nil {
		return x.X2Px
	}
	return 0
}

func (x *Box) GetY2Px() float64 {
	if x != nil {
		return x.Y2Px
	}
	return 0
}

func (x *Box) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type Scalar struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         float64                `protobuf:"fixed64,1,opt,name=value,proto3" json:"value,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Scalar) Reset() {
	*x = Scalar{}
	mi := &file_analyzer_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Scalar) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Scalar) ProtoMessage() {}

func (x *Scalar) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Scalar.ProtoReflect.Descriptor instead.
func (*Scalar) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{3}
}

func (x *Scalar) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *Scalar) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type DepthLayer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Label         string                 `protobuf:"bytes,1,opt,name=label,proto3" json:"label,omitempty"`
	NearM         float64                `protobuf:"fixed64,2,opt,name=near_m,json=nearM,proto3" json:"near_m,omitempty"`
	FarM          float64                `protobuf:"fixed64,3,opt,name=far_m,json=farM,proto3" json:"far_m,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepthLayer) Reset() {
	*x = DepthLayer{}
	mi := &file_analyzer_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepthLayer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepthLayer) ProtoMessage() {}

func (x *DepthLayer) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepthLayer.ProtoReflect.Descriptor instead.
func (*DepthLayer) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{4}
}

func (x *DepthLayer) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *DepthLayer) GetNearM() float64 {
	if x != nil {
		return x.NearM
	}
	return 0
}

func (x *DepthLayer) GetFarM() float64 {
	if x != nil {
		return x.FarM
	}
	return 0
}

type AnalyzeFrameResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ImageW          int32                  `protobuf:"varint,1,opt,name=image_w,json=imageW,proto3" json:"image_w,omitempty"`
	ImageH          int32                  `protobuf:"varint,2,opt,name=image_h,json=imageH,proto3" json:"image_h,omitempty"`
	Keypoints       []*Keypoint            `protobuf:"bytes,3,rep,name=keypoints,proto3" json:"keypoints,omitempty"`
	SubjectBox      *Box                   `protobuf:"bytes,4,opt,name=subject_box,json=subjectBox,proto3" json:"subject_box,omitempty"`
	HorizonTilt     *Scalar                `protobuf:"bytes,5,opt,name=horizon_tilt,json=horizonTilt,proto3" json:"horizon_tilt,omitempty"`
	Iso             *Scalar                `protobuf:"bytes,6,opt,name=iso,proto3" json:"iso,omitempty"`
	Aperture        *Scalar                `protobuf:"bytes,7,opt,name=aperture,proto3" json:"aperture,omitempty"`
	ShutterSpeed    *Scalar                `protobuf:"bytes,8,opt,name=shutter_speed,json=shutterSpeed,proto3" json:"shutter_speed,omitempty"`
	FocalLength     *Scalar                `protobuf:"bytes,9,opt,name=focal_length,json=focalLength,proto3" json:"focal_length,omitempty"`
	ExposureEv      *Scalar                `protobuf:"bytes,10,opt,name=exposure_ev,json=exposureEv,proto3" json:"exposure_ev,omitempty"`
	Brightness      *Scalar                `protobuf:"bytes,11,opt,name=brightness,proto3" json:"brightness,omitempty"`
	ColorTemp       *Scalar                `protobuf:"bytes,12,opt,name=color_temp,json=colorTemp,proto3" json:"color_temp,omitempty"`
	Sharpness       *Scalar                `protobuf:"bytes,13,opt,name=sharpness,proto3" json:"sharpness,omitempty"`
	Noise           *Scalar                `protobuf:"bytes,14,opt,name=noise,proto3" json:"noise,omitempty"`
	DepthLayers     []*DepthLayer          `protobuf:"bytes,15,rep,name=depth_layers,json=depthLayers,proto3" json:"depth_layers,omitempty"`
	DepthConfidence float64                `protobuf:"fixed64,16,opt,name=depth_confidence,json=depthConfidence,proto3" json:"depth_confidence,omitempty"`
	StyleCluster    string                 `protobuf:"bytes,17,opt,name=style_cluster,json=styleCluster,proto3" json:"style_cluster,omitempty"`
	StyleConfidence float64                `protobuf:"fixed64,18,opt,name=style_confidence,json=styleConfidence,proto3" json:"style_confidence,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AnalyzeFrameResponse) Reset() {
	*x = AnalyzeFrameResponse{}
	mi := &file_analyzer_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeFrameResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeFrameResponse) ProtoMessage() {}

func (x *AnalyzeFrameResponse) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeFrameResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeFrameResponse) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{5}
}

func (x *AnalyzeFrameResponse) GetImageW() int32 {
	if x != nil {
		return x.ImageW
	}
	return 0
}

func (x *AnalyzeFrameResponse) GetImageH() int32 {
	if x != nil {
		return x.ImageH
	}
	return 0
}

func (x *AnalyzeFrameResponse) GetKeypoints() []*Keypoint {
	if x != nil {
		return x.Keypoints
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetSubjectBox() *Box {
	if x != nil {
		return x.SubjectBox
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetHorizonTilt() *Scalar {
	if x != nil {
		return x.HorizonTilt
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetIso() *Scalar {
	if x != nil {
		return x.Iso
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetAperture() *Scalar {
	if x != nil {
		return x.Aperture
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetShutterSpeed() *Scalar {
	if x != nil {
		return x.ShutterSpeed
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetFocalLength() *Scalar {
	if x != nil {
		return x.FocalLength
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetExposureEv() *Scalar {
	if x != nil {
		return x.ExposureEv
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetBrightness() *Scalar {
	if x != nil {
		return x.Brightness
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetColorTemp() *Scalar {
	if x != nil {
		return x.ColorTemp
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetSharpness() *Scalar {
	if x != nil {
		return x.Sharpness
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetNoise() *Scalar {
	if x != nil {
		return x.Noise
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetDepthLayers() []*DepthLayer {
	if x != nil {
		return x.DepthLayers
	}
	return nil
}

func (x *AnalyzeFrameResponse) GetDepthConfidence() float64 {
	if x != nil {
		return x.DepthConfidence
	}
	return 0
}

func (x *AnalyzeFrameResponse) GetStyleCluster() string {
	if x != nil {
		return x.StyleCluster
	}
	return ""
}

func (x *AnalyzeFrameResponse) GetStyleConfidence() float64 {
	if x != nil {
		return x.StyleConfidence
	}
	return 0
}

type HealthRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthRequest) Reset() {
	*x = HealthRequest{}
	mi := &file_analyzer_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthRequest) ProtoMessage() {}

func (x *HealthRequest) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthRequest.ProtoReflect.Descriptor instead.
func (*HealthRequest) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{6}
}

type HealthResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ready         bool                   `protobuf:"varint,1,opt,name=ready,proto3" json:"ready,omitempty"`
	ModelVersion  string                 `protobuf:"bytes,2,opt,name=model_version,json=modelVersion,proto3" json:"model_version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *HealthResponse) Reset() {
	*x = HealthResponse{}
	mi := &file_analyzer_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *HealthResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*HealthResponse) ProtoMessage() {}

func (x *HealthResponse) ProtoReflect() protoreflect.Message {
	mi := &file_analyzer_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use HealthResponse.ProtoReflect.Descriptor instead.
func (*HealthResponse) Descriptor() ([]byte, []int) {
	return file_analyzer_proto_rawDescGZIP(), []int{7}
}

func (x *HealthResponse) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

func (x *HealthResponse) GetModelVersion() string {
	if x != nil {
		return x.ModelVersion
	}
	return ""
}

var File_analyzer_proto protoreflect.FileDescriptor

const file_analyzer_proto_rawDesc = "" +
	"\n" +
	"\x0eanalyzer.proto\x12\banalyzer\"t\n" +
	"\x13AnalyzeFrameRequest\x12\x1d\n" +
	"\n" +
	"image_jpeg\x18\x01 \x01(\fR\timageJpeg\x12\x10\n" +
	"\x03seq\x18\x02 \x01(\x04R\x03seq\x12\x14\n" +
	"\x05width\x18\x03 \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\x04 \x01(\x05R\x06height\"f\n" +
	"\bKeypoint\x12\x14\n" +
	"\x05joint\x18\x01 \x01(\tR\x05joint\x12\x11\n" +
	"\x04x_px\x18\x02 \x01(\x01R\x03xPx\x12\x11\n" +
	"\x04y_px\x18\x03 \x01(\x01R\x03yPx\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x01R\n" +
	"confidence\"y\n" +
	"\x03Box\x12\x13\n" +
	"\x05x1_px\x18\x01 \x01(\x01R\x04x1Px\x12\x13\n" +
	"\x05y1_px\x18\x02 \x01(\x01R\x04y1Px\x12\x13\n" +
	"\x05x2_px\x18\x03 \x01(\x01R\x04x2Px\x12\x13\n" +
	"\x05y2_px\x18\x04 \x01(\x01R\x04y2Px\x12\x1e\n" +
	"\n" +
	"confidence\x18\x05 \x01(\x01R\n" +
	"confidence\">\n" +
	"\x06Scalar\x12\x14\n" +
	"\x05value\x18\x01 \x01(\x01R\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\"N\n" +
	"\n" +
	"DepthLayer\x12\x14\n" +
	"\x05label\x18\x01 \x01(\tR\x05label\x12\x15\n" +
	"\x06near_m\x18\x02 \x01(\x01R\x05nearM\x12\x13\n" +
	"\x05far_m\x18\x03 \x01(\x01R\x04farM\"\xbf\x06\n" +
	"\x14AnalyzeFrameResponse\x12\x17\n" +
	"\aimage_w\x18\x01 \x01(\x05R\x06imageW\x12\x17\n" +
	"\aimage_h\x18\x02 \x01(\x05R\x06imageH\x120\n" +
	"\tkeypoints\x18\x03 \x03(\v2\x12.analyzer.KeypointR\tkeypoints\x12.\n" +
	"\vsubject_box\x18\x04 \x01(\v2\r.analyzer.BoxR\n" +
	"subjectBox\x123\n" +
	"\fhorizon_tilt\x18\x05 \x01(\v2\x10.analyzer.ScalarR\vhorizonTilt\x12\"\n" +
	"\x03iso\x18\x06 \x01(\v2\x10.analyzer.ScalarR\x03iso\x12,\n" +
	"\baperture\x18\a \x01(\v2\x10.analyzer.ScalarR\baperture\x125\n" +
	"\rshutter_speed\x18\b \x01(\v2\x10.analyzer.ScalarR\fshutterSpeed\x123\n" +
	"\ffocal_length\x18\t \x01(\v2\x10.analyzer.ScalarR\vfocalLength\x121\n" +
	"\vexposure_ev\x18\n" +
	" \x01(\v2\x10.analyzer.ScalarR\n" +
	"exposureEv\x120\n" +
	"\n" +
	"brightness\x18\v \x01(\v2\x10.analyzer.ScalarR\n" +
	"brightness\x12/\n" +
	"\n" +
	"color_temp\x18\f \x01(\v2\x10.analyzer.ScalarR\tcolorTemp\x12.\n" +
	"\tsharpness\x18\r \x01(\v2\x10.analyzer.ScalarR\tsharpness\x12&\n" +
	"\x05noise\x18\x0e \x01(\v2\x10.analyzer.ScalarR\x05noise\x127\n" +
	"\fdepth_layers\x18\x0f \x03(\v2\x14.analyzer.DepthLayerR\vdepthLayers\x12)\n" +
	"\x10depth_confidence\x18\x10 \x01(\x01R\x0fdepthConfidence\x12#\n" +
	"\rstyle_cluster\x18\x11 \x01(\tR\fstyleCluster\x12)\n" +
	"\x10style_confidence\x18\x12 \x01(\x01R\x0fstyleConfidence\"\x0f\n" +
	"\rHealthRequest\"K\n" +
	"\x0eHealthResponse\x12\x14\n" +
	"\x05ready\x18\x01 \x01(\bR\x05ready\x12#\n" +
	"\rmodel_version\x18\x02 \x01(\tR\fmodelVersion2\x9d\x01\n" +
	"\x0fAnalyzerService\x12M\n" +
	"\fAnalyzeFrame\x12\x1d.analyzer.AnalyzeFrameRequest\x1a\x1e.analyzer.AnalyzeFrameResponse\x12;\n" +
	"\x06Health\x12\x17.analyzer.HealthRequest\x1a\x18.analyzer.HealthResponseB3Z1github.com/tryangle/coach-controller/gen/analyzerb\x06proto3"

var (
	file_analyzer_proto_rawDescOnce sync.Once
	file_analyzer_proto_rawDescData []byte
)

func file_analyzer_proto_rawDescGZIP() []byte {
	file_analyzer_proto_rawDescOnce.Do(func() {
		file_analyzer_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_analyzer_proto_rawDesc), len(file_analyzer_proto_rawDesc)))
	})
	return file_analyzer_proto_rawDescData
}

var file_analyzer_proto_msgTypes = make([]protoimpl.MessageInfo, 8)
var file_analyzer_proto_goTypes = []any{
	(*AnalyzeFrameRequest)(nil),  // 0: analyzer.AnalyzeFrameRequest
	(*Keypoint)(nil),             // 1: analyzer.Keypoint
	(*Box)(nil),                  // 2: analyzer.Box
	(*Scalar)(nil),               // 3: analyzer.Scalar
	(*DepthLayer)(nil),           // 4: analyzer.DepthLayer
	(*AnalyzeFrameResponse)(nil), // 5: analyzer.AnalyzeFrameResponse
	(*HealthRequest)(nil),        // 6: analyzer.HealthRequest
	(*HealthResponse)(nil),       // 7: analyzer.HealthResponse
}
var file_analyzer_proto_depIdxs = []int32{
	1,  // 0: analyzer.AnalyzeFrameResponse.keypoints:type_name -> analyzer.Keypoint
	2,  // 1: analyzer.AnalyzeFrameResponse.subject_box:type_name -> analyzer.Box
	3,  // 2: analyzer.AnalyzeFrameResponse.horizon_tilt:type_name -> analyzer.Scalar
	3,  // 3: analyzer.AnalyzeFrameResponse.iso:type_name -> analyzer.Scalar
	3,  // 4: analyzer.AnalyzeFrameResponse.aperture:type_name -> analyzer.Scalar
	3,  // 5: analyzer.AnalyzeFrameResponse.shutter_speed:type_name -> analyzer.Scalar
	3,  // 6: analyzer.AnalyzeFrameResponse.focal_length:type_name -> analyzer.Scalar
	3,  // 7: analyzer.AnalyzeFrameResponse.exposure_ev:type_name -> analyzer.Scalar
	3,  // 8: analyzer.AnalyzeFrameResponse.brightness:type_name -> analyzer.Scalar
	3,  // 9: analyzer.AnalyzeFrameResponse.color_temp:type_name -> analyzer.Scalar
	3,  // 10: analyzer.AnalyzeFrameResponse.sharpness:type_name -> analyzer.Scalar
	3,  // 11: analyzer.AnalyzeFrameResponse.noise:type_name -> analyzer.Scalar
	4,  // 12: analyzer.AnalyzeFrameResponse.depth_layers:type_name -> analyzer.DepthLayer
	0,  // 13: analyzer.AnalyzerService.AnalyzeFrame:input_type -> analyzer.AnalyzeFrameRequest
	6,  // 14: analyzer.AnalyzerService.Health:input_type -> analyzer.HealthRequest
	5,  // 15: analyzer.AnalyzerService.AnalyzeFrame:output_type -> analyzer.AnalyzeFrameResponse
	7,  // 16: analyzer.AnalyzerService.Health:output_type -> analyzer.HealthResponse
	15, // [15:17] is the sub-list for method output_type
	13, // [13:15] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_analyzer_proto_init() }
func file_analyzer_proto_init() {
	if File_analyzer_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_analyzer_proto_rawDesc), len(file_analyzer_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   8,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_analyzer_proto_goTypes,
		DependencyIndexes: file_analyzer_proto_depIdxs,
		MessageInfos:      file_analyzer_proto_msgTypes,
	}.Build()
	File_analyzer_proto = out.File
	file_analyzer_proto_goTypes = nil
	file_analyzer_proto_depIdxs = nil
}
