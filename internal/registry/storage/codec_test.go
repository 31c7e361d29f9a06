package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"friendlylink/internal/registry/models"
	"friendlylink/internal/registry/store"
	"friendlylink/pkg/platform/sentinel"
	"friendlylink/pkg/testutil"
)

// sampleRegistry holds two elderly, two volunteers and one pair, with every
// optional field populated on at least one record.
func sampleRegistry(t *testing.T) *store.FriendlyLink {
	t.Helper()
	e1 := testutil.NewElderlyBuilder().
		WithTags("diabetic", "wheelchair").
		WithAvailableDates(testutil.MustDate("2024-03-01, 2024-03-15")).
		Build()
	e2 := testutil.NewElderlyBuilder().
		WithNric(testutil.TestNrics.Elderly2).
		WithName("Chong Mei Ling").
		WithRisk(models.RiskHigh).
		Build()
	v1 := testutil.NewVolunteerBuilder().WithMedicalTags("CPR, BASIC").Build()
	v2 := testutil.NewVolunteerBuilder().
		WithNric(testutil.TestNrics.Volunteer2).
		WithName("Devi Raj").
		Build()

	registry, err := store.NewFromLists(
		[]models.Elderly{e1, e2},
		[]models.Volunteer{v1, v2},
		[]models.PairKey{{Elderly: e1.Nric(), Volunteer: v1.Nric()}},
	)
	require.NoError(t, err)
	return registry
}

func assertSameRegistry(t *testing.T, want, got *store.FriendlyLink) {
	t.Helper()
	wantElderly, gotElderly := want.ElderlyList(), got.ElderlyList()
	require.Len(t, gotElderly, len(wantElderly))
	for i := range wantElderly {
		assert.True(t, wantElderly[i].Equal(gotElderly[i]), "elderly %d: want %s got %s", i, wantElderly[i], gotElderly[i])
	}
	wantVolunteers, gotVolunteers := want.VolunteerList(), got.VolunteerList()
	require.Len(t, gotVolunteers, len(wantVolunteers))
	for i := range wantVolunteers {
		assert.True(t, wantVolunteers[i].Equal(gotVolunteers[i]), "volunteer %d: want %s got %s", i, wantVolunteers[i], gotVolunteers[i])
	}
	assert.Equal(t, want.PairKeys(), got.PairKeys())
}

type CodecSuite struct {
	suite.Suite
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecSuite))
}

func (s *CodecSuite) TestRoundTrip() {
	registry := sampleRegistry(s.T())

	buckets, err := Encode(registry)
	s.Require().NoError(err)
	s.Len(buckets, 3)

	decoded, err := Decode(buckets)
	s.Require().NoError(err)
	assertSameRegistry(s.T(), registry, decoded)
}

func (s *CodecSuite) TestEmptyRegistryIsNotNoData() {
	buckets, err := Encode(store.New())
	s.Require().NoError(err)

	decoded, err := Decode(buckets)
	s.Require().NoError(err)
	s.Zero(decoded.Counts().Elderly)
}

func (s *CodecSuite) TestNoBucketsIsNoData() {
	_, err := Decode(nil)
	s.ErrorIs(err, sentinel.ErrNoData)
}

func (s *CodecSuite) TestMissingBucketIsEmpty() {
	decoded, err := Decode(map[string][]byte{
		BucketElderly: []byte(`[{"name":"Alice Tan","nric":"S1234567A"}]`),
	})
	s.Require().NoError(err)
	s.True(decoded.HasElderly("S1234567A"))
	s.Empty(decoded.VolunteerList())
}

func (s *CodecSuite) TestCorruptPayloads() {
	cases := map[string]map[string][]byte{
		"malformed json": {BucketElderly: []byte(`[{`)},
		"bad nric":       {BucketElderly: []byte(`[{"name":"Alice","nric":"123"}]`)},
		"blank name":     {BucketVolunteers: []byte(`[{"name":"  ","nric":"T7654321B"}]`)},
		"bad email":      {BucketVolunteers: []byte(`[{"name":"Ben","nric":"T7654321B","email":"nope"}]`)},
		"bad medical":    {BucketVolunteers: []byte(`[{"name":"Ben","nric":"T7654321B","medicalTags":["CPR"]}]`)},
		"bad risk":       {BucketElderly: []byte(`[{"name":"Amy","nric":"S1234567A","riskLevel":"EXTREME"}]`)},
		"missing pair side": {
			BucketPairs: []byte(`[{"elderlyNric":"S1234567A"}]`),
		},
		"dangling pair": {
			BucketElderly: []byte(`[{"name":"Amy","nric":"S1234567A"}]`),
			BucketPairs:   []byte(`[{"elderlyNric":"S1234567A","volunteerNric":"T7654321B"}]`),
		},
		"duplicate elderly": {
			BucketElderly: []byte(`[{"name":"Amy","nric":"S1234567A"},{"name":"Amy Lee","nric":"S1234567A"}]`),
		},
	}
	for name, buckets := range cases {
		s.Run(name, func() {
			_, err := Decode(buckets)
			s.ErrorIs(err, sentinel.ErrDataConversion)
		})
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_, err := mem.Read(ctx)
	require.ErrorIs(t, err, sentinel.ErrNoData)

	registry := sampleRegistry(t)
	require.NoError(t, mem.Write(ctx, registry))

	got, err := mem.Read(ctx)
	require.NoError(t, err)
	assertSameRegistry(t, registry, got)

	// reads are independent of the stored snapshot
	_, _, err = got.RemoveElderly(testutil.TestNrics.Elderly1)
	require.NoError(t, err)
	again, err := mem.Read(ctx)
	require.NoError(t, err)
	assert.True(t, again.HasElderly(testutil.TestNrics.Elderly1))
}

func TestMemoryCorruptBucket(t *testing.T) {
	mem := NewMemory()
	mem.Put(BucketPairs, []byte("not json"))

	_, err := mem.Read(context.Background())
	assert.ErrorIs(t, err, sentinel.ErrDataConversion)
}
