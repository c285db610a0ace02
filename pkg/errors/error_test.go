package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (suite *ErrorTestSuite) TestNew() {
	err := New(ErrCodeInvalidParameter, "bad window")
	suite.Equal(ErrCodeInvalidParameter, err.Code)
	suite.Equal("bad window", err.Message)
	suite.Nil(err.Cause)
	suite.Equal("[100] bad window", err.Error())
}

func (suite *ErrorTestSuite) TestNewf() {
	err := Newf(ErrCodeNoDataFound, "no bars found for symbol %s", "AAPL")
	suite.Equal(ErrCodeNoDataFound, err.Code)
	suite.Contains(err.Error(), "no bars found for symbol AAPL")
}

func (suite *ErrorTestSuite) TestWrap() {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeQueryFailed, "failed to read bars", cause)
	suite.Equal(cause, err.Unwrap())
	suite.Contains(err.Error(), "connection refused")
	suite.Contains(err.Error(), "failed to read bars")
}

func (suite *ErrorTestSuite) TestWrapf() {
	cause := fmt.Errorf("timeout")
	err := Wrapf(ErrCodeMarketDataFetchFailed, cause, "failed to download %s", "MSFT")
	suite.Equal(ErrCodeMarketDataFetchFailed, err.Code)
	suite.Contains(err.Error(), "failed to download MSFT")
}

func (suite *ErrorTestSuite) TestGetCode() {
	err := New(ErrCodeMissingColumn, "sma series absent")
	suite.Equal(ErrCodeMissingColumn, GetCode(err))

	plain := fmt.Errorf("plain error")
	suite.Equal(ErrCodeUnknown, GetCode(plain))
	suite.Equal(ErrCodeUnknown, GetCode(nil))
}

func (suite *ErrorTestSuite) TestGetCodeWrappedChain() {
	inner := New(ErrCodeInvalidInput, "empty price series")
	outer := fmt.Errorf("pipeline failed: %w", inner)
	suite.Equal(ErrCodeInvalidInput, GetCode(outer))
}

func (suite *ErrorTestSuite) TestHasCode() {
	err := New(ErrCodeInvalidParameter, "capital must be positive")
	suite.True(HasCode(err, ErrCodeInvalidParameter))
	suite.False(HasCode(err, ErrCodeInvalidInput))
}
