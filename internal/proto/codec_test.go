package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestJSONCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestJSONCodec_Structs(t *testing.T) {
	codec := jsonCodec{}

	data, err := codec.Marshal(&ShortenRequest{Url: "https://example.com", ShortCode: "my_code"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com","shortCode":"my_code"}`, string(data))

	var resp ListLinksResponse
	require.NoError(t, codec.Unmarshal([]byte(`{"links":{"abc":"https://example.com"}}`), &resp))
	assert.Equal(t, map[string]string{"abc": "https://example.com"}, resp.Links)
}

func TestJSONCodec_ProtoMessages(t *testing.T) {
	codec := jsonCodec{}

	data, err := codec.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	require.NoError(t, codec.Unmarshal([]byte("{}"), &emptypb.Empty{}))
	assert.Error(t, codec.Unmarshal([]byte(`{"unknown":1}`), &emptypb.Empty{}))
}
