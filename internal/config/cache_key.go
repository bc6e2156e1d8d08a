package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// CandidateResultsKey returns the hash key holding a candidate's results, one field per exam id.
func (r *CacheKeyStruct) CandidateResultsKey(candidateID string) string {
	return fmt.Sprintf("results:candidate:%s", candidateID)
}

var CacheKey = NewCacheKeyStruct()
