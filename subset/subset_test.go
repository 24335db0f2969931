package subset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dppmcmc/subset"
)

// SampleSuite groups tests for the ordered sample container.
type SampleSuite struct {
	suite.Suite
	s *subset.Sample
}

func (s *SampleSuite) SetupTest() {
	var err error
	s.s, err = subset.New(6, []int{4, 1, 3})
	require.NoError(s.T(), err)
}

func (s *SampleSuite) TestOrderAndMembership() {
	require.Equal(s.T(), 6, s.s.Universe())
	require.Equal(s.T(), 3, s.s.Len())
	require.Equal(s.T(), []int{4, 1, 3}, s.s.Indices())
	require.True(s.T(), s.s.Contains(1))
	require.False(s.T(), s.s.Contains(0))
	require.False(s.T(), s.s.Contains(-1))
	require.False(s.T(), s.s.Contains(6))
}

func (s *SampleSuite) TestRemoveAtPreservesOrder() {
	v, err := s.s.RemoveAt(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, v)
	require.Equal(s.T(), []int{1, 3}, s.s.Indices())
	require.False(s.T(), s.s.Contains(4))

	// Positions must be refreshed: removing 3 by value must still work.
	require.True(s.T(), s.s.Remove(3))
	require.Equal(s.T(), []int{1}, s.s.Indices())
	require.False(s.T(), s.s.Remove(3))
}

func (s *SampleSuite) TestReplaceAt() {
	require.NoError(s.T(), s.s.ReplaceAt(1, 0))
	require.Equal(s.T(), []int{4, 0, 3}, s.s.Indices())
	require.False(s.T(), s.s.Contains(1))

	err := s.s.ReplaceAt(0, 3)
	require.True(s.T(), errors.Is(err, subset.ErrDuplicate))
	err = s.s.ReplaceAt(5, 2)
	require.True(s.T(), errors.Is(err, subset.ErrOutOfRange))
}

func (s *SampleSuite) TestCloneIsIndependent() {
	c := s.s.Clone()
	require.NoError(s.T(), c.Add(0))
	require.Equal(s.T(), 3, s.s.Len())
	require.Equal(s.T(), 4, c.Len())
	require.False(s.T(), s.s.Contains(0))
}

func (s *SampleSuite) TestComplement() {
	require.Equal(s.T(), []int{0, 2, 5}, s.s.Complement())

	var (
		j   int
		v   int
		err error
	)
	for j = 0; j < 3; j++ {
		v, err = s.s.OutsideAt(j)
		require.NoError(s.T(), err)
		require.Equal(s.T(), s.s.Complement()[j], v)
	}
	_, err = s.s.OutsideAt(3)
	require.True(s.T(), errors.Is(err, subset.ErrOutOfRange))
}

func TestSampleSuite(t *testing.T) {
	suite.Run(t, new(SampleSuite))
}

func TestNew_Errors(t *testing.T) {
	_, err := subset.New(3, []int{0, 0})
	require.True(t, errors.Is(err, subset.ErrDuplicate))

	_, err = subset.New(3, []int{3})
	require.True(t, errors.Is(err, subset.ErrOutOfRange))

	_, err = subset.New(-1, nil)
	require.True(t, errors.Is(err, subset.ErrBadUniverse))
}

func TestNew_Empty(t *testing.T) {
	s, err := subset.New(0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
	require.Empty(t, s.Complement())
}
