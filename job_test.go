// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bigquery

import (
	"testing"

	"cloud.google.com/go/internal/testutil"
	"github.com/google/go-cmp/cmp"

	bq "cloud.google.com/go/bigquery/v2"
)

func TestCreateJobRef(t *testing.T) {
	defer fixRandomID("RANDOM")()
	cNoLoc := &Client{projectID: "projectID"}
	cLoc := &Client{projectID: "projectID", Location: "defaultLoc"}
	for _, test := range []struct {
		in     JobIDConfig
		client *Client
		want   *bq.JobReference
	}{
		{
			in:   JobIDConfig{JobID: "foo"},
			want: &bq.JobReference{JobId: "foo"},
		},
		{
			in:   JobIDConfig{},
			want: &bq.JobReference{JobId: "RANDOM"},
		},
		{
			in:   JobIDConfig{AddJobIDSuffix: true},
			want: &bq.JobReference{JobId: "RANDOM"},
		},
		{
			in:   JobIDConfig{JobID: "foo", AddJobIDSuffix: true},
			want: &bq.JobReference{JobId: "foo-RANDOM"},
		},
		{
			in:   JobIDConfig{JobID: "foo", Location: "loc"},
			want: &bq.JobReference{JobId: "foo", Location: "loc"},
		},
		{
			in:     JobIDConfig{JobID: "foo"},
			client: cLoc,
			want:   &bq.JobReference{JobId: "foo", Location: "defaultLoc"},
		},
		{
			in:     JobIDConfig{JobID: "foo", Location: "loc"},
			client: cLoc,
			want:   &bq.JobReference{JobId: "foo", Location: "loc"},
		},
	} {
		client := test.client
		if client == nil {
			client = cNoLoc
		}
		got := test.in.createJobRef(client)
		test.want.ProjectId = "projectID"
		if !testutil.Equal(got, test.want) {
			t.Errorf("%+v: got %+v, want %+v", test.in, got, test.want)
		}
	}
}

func fixRandomID(s string) func() {
	prev := randomIDFn
	randomIDFn = func() string { return s }
	return func() { randomIDFn = prev }
}

func checkJob(t *testing.T, i int, got, want *bq.Job) {
	if got.JobReference == nil {
		t.Errorf("#%d: empty job reference", i)
		return
	}
	if got.JobReference.JobId == "" {
		t.Errorf("#%d: empty job ID", i)
		return
	}
	d := testutil.Diff(got, want)
	if d != "" {
		t.Errorf("#%d: (got=-, want=+) %s", i, d)
	}
}

func TestSetJobStatus(t *testing.T) {
	for _, test := range []struct {
		in      *bq.JobStatus
		want    *JobStatus
		wantErr bool
	}{
		{in: nil, want: nil},
		{
			in:   &bq.JobStatus{State: "DONE"},
			want: &JobStatus{State: Done},
		},
		{
			in:   &bq.JobStatus{State: "PENDING"},
			want: &JobStatus{State: Pending},
		},
		{
			in:   &bq.JobStatus{State: "RUNNING"},
			want: &JobStatus{State: Running},
		},
		{
			in:      &bq.JobStatus{State: "ARCHIVED"},
			wantErr: true,
		},
		{
			// An error result does not affect the status of a job that is
			// still running.
			in: &bq.JobStatus{
				State:       "RUNNING",
				ErrorResult: &bq.ErrorProto{Reason: "invalid", Message: "oops"},
			},
			want: &JobStatus{State: Running},
		},
	} {
		j := &Job{}
		err := j.setStatus(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("%+v: got nil, want error", test.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%+v: %v", test.in, err)
		}
		if !testutil.Equal(j.lastStatus, test.want, cmp.AllowUnexported(JobStatus{})) {
			t.Errorf("%+v: got %+v, want %+v", test.in, j.lastStatus, test.want)
		}
	}

	// A done job with an error result exposes the error via JobStatus.Err.
	j := &Job{}
	if err := j.setStatus(&bq.JobStatus{
		State:       "DONE",
		ErrorResult: &bq.ErrorProto{Reason: "invalid", Message: "oops"},
	}); err != nil {
		t.Fatal(err)
	}
	if j.lastStatus.Err() == nil {
		t.Error("done job with error result: got nil, want error")
	}
}

func TestJobStatistics(t *testing.T) {
	crtime := int64(1234)
	for _, test := range []struct {
		in   *bq.JobStatistics
		want Statistics
	}{
		{
			in: &bq.JobStatistics{
				CreationTime: crtime,
				Extract: &bq.JobStatistics4{
					DestinationUriFileCounts: []int64{1, 2, 3},
				},
			},
			want: &ExtractStatistics{DestinationURIFileCounts: []int64{1, 2, 3}},
		},
		{
			in: &bq.JobStatistics{
				CreationTime: crtime,
				Load: &bq.JobStatistics3{
					InputFileBytes: 1,
					InputFiles:     2,
					OutputBytes:    3,
					OutputRows:     4,
				},
			},
			want: &LoadStatistics{
				InputFileBytes: 1,
				InputFiles:     2,
				OutputBytes:    3,
				OutputRows:     4,
			},
		},
		{
			in: &bq.JobStatistics{
				CreationTime: crtime,
				Query: &bq.JobStatistics2{
					CacheHit:            true,
					NumDmlAffectedRows:  3,
					TotalBytesBilled:    4,
					TotalBytesProcessed: 5,
				},
			},
			want: &QueryStatistics{
				CacheHit:            true,
				NumDMLAffectedRows:  3,
				TotalBytesBilled:    4,
				TotalBytesProcessed: 5,
			},
		},
	} {
		j := &Job{lastStatus: &JobStatus{}}
		j.setStatistics(test.in, nil)
		got := j.lastStatus.Statistics
		if got.CreationTime != unixMillisToTime(crtime) {
			t.Errorf("creation time: got %v, want %v", got.CreationTime, unixMillisToTime(crtime))
		}
		if !testutil.Equal(got.Details, test.want) {
			t.Errorf("details:\ngot %+v\nwant %+v", got.Details, test.want)
		}
	}
}

func TestJobIteratorStateFilter(t *testing.T) {
	// An out-of-range state yields an error rather than an RPC.
	it := &JobIterator{State: State(99)}
	if _, err := it.fetch(0, ""); err == nil {
		t.Error("invalid state: got nil, want error")
	}
}

func TestBQToJob(t *testing.T) {
	c := &Client{projectID: "p"}
	bqjob := &bq.Job{
		JobReference: &bq.JobReference{
			ProjectId: "p",
			JobId:     "j",
			Location:  "loc",
		},
		Configuration: &bq.JobConfiguration{
			Query: &bq.JobConfigurationQuery{Query: "sql"},
		},
		Status:    &bq.JobStatus{State: "DONE"},
		UserEmail: "user@example.com",
	}
	j, err := bqToJob(bqjob, c)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := j.ID(), "j"; got != want {
		t.Errorf("ID: got %q, want %q", got, want)
	}
	if got, want := j.Location(), "loc"; got != want {
		t.Errorf("Location: got %q, want %q", got, want)
	}
	if got, want := j.Email(), "user@example.com"; got != want {
		t.Errorf("Email: got %q, want %q", got, want)
	}
	if got, want := j.ProjectID(), "p"; got != want {
		t.Errorf("ProjectID: got %q, want %q", got, want)
	}
	if !j.isQuery() {
		t.Error("isQuery: got false, want true")
	}
	if !j.LastStatus().Done() {
		t.Error("LastStatus: job not done")
	}
}
