package traindata

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pullcorpus/pullcorpus/corpus-golib/errors"
)

// Split partitions records into contiguous train and test slices,
// with floor(trainFrac * len(recs)) records going to train. The input order
// is preserved, no shuffling or stratification happens here.
func Split(recs []Record, trainFrac float64) (train, test []Record) {
	n := int(trainFrac * float64(len(recs)))
	return recs[:n], recs[n:]
}

// WriteFile serializes records as an indented JSON array at path, overwriting
// whatever is there. A nil slice is written as an empty array.
func WriteFile(path string, recs []Record) error {
	if recs == nil {
		recs = []Record{}
	}

	buf, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return errors.Wrapf(err, "error marshaling %d records for %s", len(recs), path)
	}

	return errors.WrapfOrNil(ioutil.WriteFile(path, buf, 0644), "error writing %s", path)
}
