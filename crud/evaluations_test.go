package crud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewdesk/utils"
)

func TestCreateEvaluationOnePerEvaluator(t *testing.T) {
	db := newTestDB(t)
	author := createUser(t, db, "author@example.com")
	evaluator := createUser(t, db, "eval@example.com")
	team, err := CreateTeam(db, "Alpha", "ALPHA", nil)
	require.NoError(t, err)
	task, err := CreateTask(db, team.ID, author.ID, "Ship it", nil, nil, nil)
	require.NoError(t, err)

	_, err = CreateEvaluation(db, task.ID, evaluator.ID, 8, nil, nil, nil)
	require.NoError(t, err)

	_, err = CreateEvaluation(db, task.ID, evaluator.ID, 3, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))

	// a different evaluator may still score the task
	_, err = CreateEvaluation(db, task.ID, author.ID, 5, nil, nil, nil)
	require.NoError(t, err)

	evals, err := ListEvaluationsByTask(db, task.ID)
	require.NoError(t, err)
	assert.Len(t, evals, 2)
}
