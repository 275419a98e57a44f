// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/testutil"
)

// TestConcurrentVotesSameOption verifies that N simultaneous votes on the
// same (poll, option) all land: the counter ends exactly N higher, with no
// lost updates.
func TestConcurrentVotesSameOption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newVoteHandler(conn)
	pollID := testutil.CreateTestPoll(t, conn, "Color", []string{"Red", "Blue"}, nil)
	id := strconv.FormatInt(pollID, 10)

	numVoters := 25

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/poll/"+id+"/vote", models.VoteRequest{OptionIndex: 1}, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			if w.Code == 200 {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	votes := testutil.PollVotes(t, conn, pollID)
	if !slices.Equal(votes, []int64{0, int64(numVoters)}) {
		t.Errorf("votes = %v, want [0 %d]", votes, numVoters)
	}
}

// TestConcurrentVotesMixedOptions verifies that concurrent votes spread
// across options keep the per-option counters independent.
func TestConcurrentVotesMixedOptions(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := newVoteHandler(conn)
	pollID := testutil.CreateTestPoll(t, conn, "Color", []string{"Red", "Blue", "Green"}, nil)
	id := strconv.FormatInt(pollID, 10)

	// 12 voters round-robin across 3 options: 4 votes each
	numVoters := 12

	var wg sync.WaitGroup
	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/poll/"+id+"/vote", models.VoteRequest{OptionIndex: voterIdx % 3}, nil)
			req.SetPathValue("id", id)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)
		}(i)
	}

	wg.Wait()

	votes := testutil.PollVotes(t, conn, pollID)
	if !slices.Equal(votes, []int64{4, 4, 4}) {
		t.Errorf("votes = %v, want [4 4 4]", votes)
	}
}
