// Package analyzer wraps the gRPC connection to the Python vision
// sidecar and converts its responses into measurement bundles.
//
//go:generate protoc --go_out=../.. --go_opt=module=github.com/tryangle/coach-controller --go-grpc_out=../.. --go-grpc_opt=module=github.com/tryangle/coach-controller -I ../../proto ../../proto/analyzer.proto
package analyzer

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/tryangle/coach-controller/gen/analyzer"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region types
// Health holds the sidecar's readiness response.
type Health struct {
	Ready        bool
	ModelVersion string
}

// #endregion types

// #region client-struct
// Client wraps the gRPC connection to the analyzer sidecar.
type Client struct {
	conn   *grpc.ClientConn
	client pb.AnalyzerServiceClient
}

// #endregion client-struct

// #region constructor
// NewClient connects to the analyzer gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewAnalyzerServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.AnalyzerServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region analyze
// AnalyzeFrame sends one captured frame and returns its measurement
// bundle. Absent response fields yield absent bundle fields.
func (c *Client) AnalyzeFrame(ctx context.Context, imageJPEG []byte, seq uint64, width, height int) (snapshot.Bundle, error) {
	resp, err := c.client.AnalyzeFrame(ctx, &pb.AnalyzeFrameRequest{
		ImageJpeg: imageJPEG,
		Seq:       seq,
		Width:     int32(width),
		Height:    int32(height),
	})
	if err != nil {
		return snapshot.Bundle{}, fmt.Errorf("analyze rpc: %w", err)
	}
	return bundleFromResponse(resp), nil
}

// Health queries sidecar readiness.
func (c *Client) Health(ctx context.Context) (Health, error) {
	resp, err := c.client.Health(ctx, &pb.HealthRequest{})
	if err != nil {
		return Health{}, fmt.Errorf("health rpc: %w", err)
	}
	return Health{Ready: resp.Ready, ModelVersion: resp.ModelVersion}, nil
}

// #endregion analyze

// #region convert

func bundleFromResponse(resp *pb.AnalyzeFrameResponse) snapshot.Bundle {
	b := snapshot.Bundle{
		ImageW:          int(resp.ImageW),
		ImageH:          int(resp.ImageH),
		DepthConfidence: resp.DepthConfidence,
		StyleCluster:    resp.StyleCluster,
		StyleConfidence: resp.StyleConfidence,
	}

	if len(resp.Keypoints) > 0 {
		b.Keypoints = make(map[snapshot.JointName]snapshot.RawKeypoint, len(resp.Keypoints))
		for _, kp := range resp.Keypoints {
			b.Keypoints[snapshot.JointName(kp.Joint)] = snapshot.RawKeypoint{
				XPx:        kp.XPx,
				YPx:        kp.YPx,
				Confidence: kp.Confidence,
			}
		}
	}
	if resp.SubjectBox != nil {
		b.SubjectBox = &snapshot.RawBox{
			X1Px:       resp.SubjectBox.X1Px,
			Y1Px:       resp.SubjectBox.Y1Px,
			X2Px:       resp.SubjectBox.X2Px,
			Y2Px:       resp.SubjectBox.Y2Px,
			Confidence: resp.SubjectBox.Confidence,
		}
	}

	b.HorizonTilt = toRawScalar(resp.HorizonTilt)
	b.ISO = toRawScalar(resp.Iso)
	b.Aperture = toRawScalar(resp.Aperture)
	b.ShutterSpeed = toRawScalar(resp.ShutterSpeed)
	b.FocalLength = toRawScalar(resp.FocalLength)
	b.ExposureEV = toRawScalar(resp.ExposureEv)
	b.Brightness = toRawScalar(resp.Brightness)
	b.ColorTemp = toRawScalar(resp.ColorTemp)
	b.Sharpness = toRawScalar(resp.Sharpness)
	b.Noise = toRawScalar(resp.Noise)

	for _, l := range resp.DepthLayers {
		b.DepthLayers = append(b.DepthLayers, snapshot.DepthLayer{
			Label: l.Label,
			NearM: l.NearM,
			FarM:  l.FarM,
		})
	}

	return b
}

func toRawScalar(s *pb.Scalar) *snapshot.RawScalar {
	if s == nil {
		return nil
	}
	return &snapshot.RawScalar{Value: s.Value, Confidence: s.Confidence}
}

// #endregion convert
