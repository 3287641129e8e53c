package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mockdb "github.com/Drolfothesgnir/chanpost/db/mock"
	db "github.com/Drolfothesgnir/chanpost/db/sqlc"
	"github.com/Drolfothesgnir/chanpost/markup"
	"github.com/Drolfothesgnir/chanpost/openpost"
	"github.com/Drolfothesgnir/chanpost/tmpstore"
	mocktmp "github.com/Drolfothesgnir/chanpost/tmpstore/mock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSession(post db.Post, line string, bodyLength int) *openpost.OpenPost {
	op := openpost.New(uint64(post.ID), uint64(post.Op), post.Board, testConfig.MaxBodyLength)
	op.Line = line
	op.BodyLength = bodyLength
	return op
}

func withBody(post db.Post, body string) db.Post {
	post.Body = body
	return post
}

func decodeEditResponse(t *testing.T, recorder *httptest.ResponseRecorder) EditResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, recorder.Code)

	var res EditResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	return res
}

type editTestCase struct {
	name          string
	op            string
	body          any
	buildStubs    testStubs
	checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
}

func runEditTests(t *testing.T, sessionID uuid.UUID, testCases []editTestCase) {
	t.Helper()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mockdb.NewMockStore(ctrl)
			tmp := mocktmp.NewMockStore(ctrl)
			tc.buildStubs(store, tmp)

			service := newTestService(t, store, tmp)
			url := fmt.Sprintf("%s/open/%s/%s", PostsURL, sessionID, tc.op)
			recorder := serveJSON(t, service, http.MethodPost, url, tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestAppendChar(t *testing.T) {
	sessionID := uuid.New()
	post := randomPost(true)

	runEditTests(t, sessionID, []editTestCase{
		{
			name: "OK",
			op:   "append",
			body: gin.H{"char": "ö"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "ab", 2), nil)
				store.EXPECT().
					AppendBody(gomock.Any(), db.AppendBodyParams{ID: post.ID, Text: "ö"}).
					Times(1).
					Return(withBody(post, "abö"), nil)
				tmp.EXPECT().
					SaveOpenPost(gomock.Any(), sessionID, newSession(post, "abö", 3), testConfig.OpenPostTTL).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.Equal(t, "abö", res.Body)
				require.Equal(t, "abö", res.Line)
				require.True(t, res.Editing)
			},
		},
		{
			name: "NewlineCommitsLine",
			op:   "append",
			body: gin.H{"char": "\n"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				body := "#flip >>1"
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, body, 9), nil)
				store.EXPECT().GetPost(gomock.Any(), post.ID).Times(1).Return(withBody(post, body), nil)
				store.EXPECT().GetPostOPs(gomock.Any(), []int64{1}).Times(1).Return(map[int64]int64{1: 1}, nil)
				store.EXPECT().
					CommitLineTx(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg db.CommitLineTxParams) (db.CommitLineTxResult, error) {
						require.Equal(t, post.ID, arg.ID)
						require.True(t, arg.Newline)
						require.Len(t, arg.Commands, 1)
						require.IsType(t, markup.CoinFlip{}, arg.Commands[0])
						require.Equal(t, map[uint64]markup.LinkData{1: {OP: 1}}, arg.Links)
						return db.CommitLineTxResult{
							Post:       withBody(post, body+"\n"),
							Backlinked: []int64{1},
						}, nil
					})
				tmp.EXPECT().InvalidateRender(gomock.Any(), int64(1)).Times(1).Return(nil)
				tmp.EXPECT().
					SaveOpenPost(gomock.Any(), sessionID, newSession(post, "", 10), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.Equal(t, "#flip >>1\n", res.Body)
				require.Empty(t, res.Line)
			},
		},
		{
			name: "NotOneCharacter",
			op:   "append",
			body: gin.H{"char": "ab"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "", 0), nil)
				store.EXPECT().AppendBody(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "char", res.Fields[0].FieldName)
				require.Equal(t, getBindingErrorMessage("single_char"), res.Fields[0].ErrorMessage)
			},
		},
		{
			name: "BodyTooLong",
			op:   "append",
			body: gin.H{"char": "x"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				full := newSession(post, "x", testConfig.MaxBodyLength)
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(full, nil)
				store.EXPECT().AppendBody(gomock.Any(), gomock.Any()).Times(0)
				tmp.EXPECT().SaveOpenPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, openpost.ErrBodyTooLong)
			},
		},
		{
			name: "PostClosed",
			op:   "append",
			body: gin.H{"char": "x"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				closed := &db.OpError{Op: "append-body", Kind: db.KindClosed, Entity: "post", EntityID: post.ID, Err: db.ErrPostClosed}
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "", 0), nil)
				store.EXPECT().AppendBody(gomock.Any(), gomock.Any()).Times(1).Return(db.Post{}, closed)
				tmp.EXPECT().SaveOpenPost(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusConflict, ErrPostClosed)
			},
		},
		{
			name: "SessionNotFound",
			op:   "append",
			body: gin.H{"char": "x"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(nil, tmpstore.ErrSessionNotFound)
				store.EXPECT().AppendBody(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusNotFound, ErrSessionNotFound)
			},
		},
	})
}

func TestAppendChar_InvalidSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockdb.NewMockStore(ctrl)
	tmp := mocktmp.NewMockStore(ctrl)
	tmp.EXPECT().GetOpenPost(gomock.Any(), gomock.Any()).Times(0)

	service := newTestService(t, store, tmp)
	recorder := serveJSON(t, service, http.MethodPost, PostsURL+"/open/not-a-uuid/append", gin.H{"char": "x"})

	res := requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidSessionID)
	require.Len(t, res.Fields, 1)
	require.Equal(t, "session_id", res.Fields[0].FieldName)
}

func TestBackspace(t *testing.T) {
	sessionID := uuid.New()
	post := randomPost(true)

	runEditTests(t, sessionID, []editTestCase{
		{
			name: "OK",
			op:   "backspace",
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "aß", 2), nil)
				store.EXPECT().Backspace(gomock.Any(), post.ID).Times(1).Return(withBody(post, "a"), nil)
				tmp.EXPECT().
					SaveOpenPost(gomock.Any(), sessionID, newSession(post, "a", 1), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.Equal(t, "a", res.Body)
				require.Equal(t, "a", res.Line)
			},
		},
		{
			name: "LineEmpty",
			op:   "backspace",
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "", 4), nil)
				store.EXPECT().Backspace(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, openpost.ErrLineEmpty)
			},
		},
	})
}

func TestSplice(t *testing.T) {
	sessionID := uuid.New()
	post := randomPost(true)

	runEditTests(t, sessionID, []editTestCase{
		{
			name: "OK",
			op:   "splice",
			body: gin.H{"start": 1, "len": 3, "text": "ipp"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "hello", 5), nil)
				store.EXPECT().
					ReplaceLastLineTx(gomock.Any(), db.ReplaceLastLineTxParams{ID: post.ID, Line: "hippo"}).
					Times(1).
					Return(withBody(post, "hippo"), nil)
				tmp.EXPECT().SaveOpenPost(gomock.Any(), sessionID, gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.Equal(t, "hippo", res.Line)
				require.Equal(t, &openpost.Splice{Start: 1, Len: 3, Text: "ipp"}, res.Splice)
			},
		},
		{
			name: "TrimmedToMaxLength",
			op:   "splice",
			body: gin.H{"start": 2, "len": 0, "text": "cdef"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				session := newSession(post, "ab", testConfig.MaxBodyLength-2)
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(session, nil)
				store.EXPECT().
					ReplaceLastLineTx(gomock.Any(), db.ReplaceLastLineTxParams{ID: post.ID, Line: "abcd"}).
					Times(1).
					Return(withBody(post, "abcd"), nil)
				tmp.EXPECT().SaveOpenPost(gomock.Any(), sessionID, gomock.Any(), gomock.Any()).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.Equal(t, "abcd", res.Line)
				require.Equal(t, &openpost.Splice{Start: 2, Len: -1, Text: "abcd"}, res.Splice)
			},
		},
		{
			name: "InvalidCoords",
			op:   "splice",
			body: gin.H{"start": 1, "len": 5, "text": "x"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "ab", 2), nil)
				store.EXPECT().ReplaceLastLineTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, openpost.ErrInvalidSpliceCoords)
			},
		},
		{
			name: "NewlineInText",
			op:   "splice",
			body: gin.H{"start": 0, "len": 0, "text": "a\nb"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "ab", 2), nil)
				store.EXPECT().ReplaceLastLineTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusBadRequest, openpost.ErrNewlineInSplice)
			},
		},
		{
			name: "NegativeLen",
			op:   "splice",
			body: gin.H{"start": 0, "len": -1, "text": "x"},
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "ab", 2), nil)
				store.EXPECT().ReplaceLastLineTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := requireErrorResponse(t, recorder, http.StatusBadRequest, ErrInvalidParams)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "len", res.Fields[0].FieldName)
			},
		},
	})
}

func TestClosePost(t *testing.T) {
	sessionID := uuid.New()
	post := randomPost(true)

	closed := post
	closed.Editing = false
	closed.Body = "x\nbye #8ball"

	runEditTests(t, sessionID, []editTestCase{
		{
			name: "CommitsLastLine",
			op:   "close",
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "bye #8ball", 12), nil)
				store.EXPECT().GetPost(gomock.Any(), post.ID).Times(1).Return(withBody(post, "x\nbye #8ball"), nil)
				store.EXPECT().
					CommitLineTx(gomock.Any(), db.CommitLineTxParams{
						ID:       post.ID,
						Commands: markup.Commands{markup.EightBall{Answer: "Yes"}},
					}).
					Times(1).
					Return(db.CommitLineTxResult{Post: withBody(post, "x\nbye #8ball")}, nil)
				store.EXPECT().ClosePost(gomock.Any(), post.ID).Times(1).Return(closed, nil)
				tmp.EXPECT().DeleteOpenPost(gomock.Any(), sessionID).Times(1).Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.False(t, res.Editing)
				require.Equal(t, closed.Body, res.Body)
				require.Empty(t, res.Line)
			},
		},
		{
			name: "EmptyLine",
			op:   "close",
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "", 3), nil)
				store.EXPECT().GetPost(gomock.Any(), gomock.Any()).Times(0)
				store.EXPECT().ClosePost(gomock.Any(), post.ID).Times(1).Return(closed, nil)
				tmp.EXPECT().DeleteOpenPost(gomock.Any(), sessionID).Times(1).Return(errors.New("redis down"))
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeEditResponse(t, recorder)
				require.False(t, res.Editing)
			},
		},
		{
			name: "AlreadyClosed",
			op:   "close",
			buildStubs: func(store *mockdb.MockStore, tmp *mocktmp.MockStore) {
				err := &db.OpError{Op: "close-post", Kind: db.KindClosed, Entity: "post", EntityID: post.ID, Err: db.ErrPostClosed}
				tmp.EXPECT().GetOpenPost(gomock.Any(), sessionID).Times(1).Return(newSession(post, "", 3), nil)
				store.EXPECT().ClosePost(gomock.Any(), post.ID).Times(1).Return(db.Post{}, err)
				tmp.EXPECT().DeleteOpenPost(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				requireErrorResponse(t, recorder, http.StatusConflict, ErrPostClosed)
			},
		},
	})
}
