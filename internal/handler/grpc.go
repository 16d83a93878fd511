package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/MikhailRaia/link-shortener/internal/proto"
	"github.com/MikhailRaia/link-shortener/internal/service"
)

type LinkGRPCServer struct {
	linkService LinkService
}

func NewLinkGRPCServer(linkService LinkService) *LinkGRPCServer {
	return &LinkGRPCServer{
		linkService: linkService,
	}
}

// NewGRPCServer builds a grpc.Server with the link service registered and request logging enabled.
func NewGRPCServer(linkService LinkService) *grpc.Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(loggingInterceptor, recoveryInterceptor))
	proto.RegisterLinkServiceServer(s, NewLinkGRPCServer(linkService))
	return s
}

func loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Msg("gRPC request processed")

	return resp, err
}

// recoveryInterceptor turns a handler panic into codes.Internal.
func recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().
				Str("method", info.FullMethod).
				Interface("panic", p).
				Msg("gRPC handler panicked")
			err = status.Error(codes.Internal, "internal error")
		}
	}()

	return handler(ctx, req)
}

func (s *LinkGRPCServer) Shorten(ctx context.Context, req *proto.ShortenRequest) (*proto.ShortenResponse, error) {
	code, err := s.linkService.Shorten(ctx, req.Url, req.ShortCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrURLRequired),
			errors.Is(err, service.ErrInvalidURL),
			errors.Is(err, service.ErrInvalidShortCode):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, service.ErrShortCodeExists):
			return nil, status.Error(codes.AlreadyExists, msgShortCodeExists)
		}
		return nil, status.Errorf(codes.Internal, "failed to shorten URL: %v", err)
	}

	return &proto.ShortenResponse{Success: true, ShortCode: code}, nil
}

func (s *LinkGRPCServer) Resolve(ctx context.Context, req *proto.ResolveRequest) (*proto.ResolveResponse, error) {
	if req.ShortCode == "" {
		return nil, status.Error(codes.InvalidArgument, "short code is required")
	}

	target, found, err := s.linkService.Resolve(ctx, req.ShortCode)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to resolve short code: %v", err)
	}

	if !found {
		return nil, status.Error(codes.NotFound, "short code not found")
	}

	return &proto.ResolveResponse{Url: target}, nil
}

func (s *LinkGRPCServer) ListLinks(ctx context.Context, _ *emptypb.Empty) (*proto.ListLinksResponse, error) {
	links, err := s.linkService.Links(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list links: %v", err)
	}

	return &proto.ListLinksResponse{Links: links}, nil
}
