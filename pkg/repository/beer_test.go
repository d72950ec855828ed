package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"olradar.se/Olradar/pkg/model"
)

type BeerTestSuite struct {
	RepositorySuite
}

func TestBeerTestSuite(t *testing.T) {
	suite.Run(t, new(BeerTestSuite))
}

const upsertBeerSQL = `INSERT INTO "beers" ("id","name","style","created_at","updated_at") VALUES ($1,$2,$3,$4,$5) ON CONFLICT ("id") DO UPDATE SET "name"="excluded"."name","style"="excluded"."style","updated_at"="excluded"."updated_at"`

func (suite *BeerTestSuite) TestUpsertBeer_AddsBeer() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(upsertBeerSQL)).
		WithArgs("beer-mariestads", "Mariestads", "Lager", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	beer := model.Beer{ID: "beer-mariestads", Name: "Mariestads", Style: "Lager"}
	result, err := suite.repository.UpsertBeer(context.Background(), beer)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal("beer-mariestads", result.ID)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestUpsertBeer_LastWriterWinsOnStyle() {
	// same identifier, new style: the conflict clause overwrites in place
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(upsertBeerSQL)).
		WithArgs("beer-mariestads", "Mariestads", "Pilsner", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	result, err := suite.repository.UpsertBeer(context.Background(), model.Beer{ID: "beer-mariestads", Name: "Mariestads", Style: "Pilsner"})
	suite.Require().NoError(err)
	suite.Equal("Pilsner", result.Style)
	suite.NoError(suite.mock.ExpectationsWereMet())
}

func (suite *BeerTestSuite) TestUpsertBeer_ReturnsStoreError() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^INSERT INTO "beers" (.+)`).WillReturnError(errors.New("connection reset"))
	suite.mock.ExpectRollback()

	result, err := suite.repository.UpsertBeer(context.Background(), model.Beer{ID: "beer-testbrew", Name: "Testbrew", Style: "IPA"})
	suite.Require().Error(err)
	suite.Nil(result)
}
