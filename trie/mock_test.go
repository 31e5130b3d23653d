package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lucidchain/mmpt/capability/capabilitymock"
)

func TestInsertPropagatesKeyEncoderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	keyEnc := capabilitymock.NewMockKeyEncoder(ctrl)

	boom := errors.New("boom")
	keyEnc.EXPECT().EncodeKey([]byte("dog")).Return(nil, boom)

	tr := New(Options{KeyEncoder: keyEnc})
	_, err := tr.Insert([]byte("dog"), []byte("puppy"))

	var encErr *EncodingFailure
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, "key", encErr.Op)
	require.ErrorIs(t, err, boom)
	require.True(t, tr.IsEmpty(), "a failed key encode must not mutate the trie")
}

func TestInsertValuePropagatesValueEncoderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	valEnc := capabilitymock.NewMockValueEncoder(ctrl)

	boom := errors.New("boom")
	valEnc.EXPECT().EncodeValue(42).Return(nil, boom)

	tr := New(Options{ValueEncoder: valEnc})
	_, err := tr.InsertValue([]byte("dog"), 42)

	var encErr *EncodingFailure
	require.ErrorAs(t, err, &encErr)
	require.Equal(t, "value", encErr.Op)
	require.ErrorIs(t, err, boom)
	require.True(t, tr.IsEmpty())
}
