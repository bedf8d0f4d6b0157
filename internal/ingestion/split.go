package ingestion

import (
	"math/rand"

	"netsentry/domain/frame"
)

// splitFrame partitions records into train and test frames by testRatio using
// a seeded permutation, so a rerun with the same seed reproduces the split.
func splitFrame(f *frame.Frame, testRatio float64, seed int64) (train, test *frame.Frame) {
	n := f.Height()
	indices := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(float64(n) * testRatio)

	testRecords := make([][]string, 0, nTest)
	trainRecords := make([][]string, 0, n-nTest)
	for i, idx := range indices {
		if i < nTest {
			testRecords = append(testRecords, f.Records[idx])
		} else {
			trainRecords = append(trainRecords, f.Records[idx])
		}
	}

	train = &frame.Frame{Columns: f.Columns, Records: trainRecords}
	test = &frame.Frame{Columns: f.Columns, Records: testRecords}
	return train, test
}
