package errors

import (
	"fmt"
	"sort"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ErrorDomain is the ErrorInfo domain attached to every status this service returns
const ErrorDomain = "pvmhub"

const (
	metaValidation = "validation_errors"
	metaRetryable  = "retryable"
)

// ToGRPCError converts an error to a gRPC status error.
//
// Meta travels as status details: validation errors as a BadRequest, the retryable
// flag as RetryInfo and every other entry as ErrorInfo metadata.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st.Err()
	}

	info := &errdetails.ErrorInfo{
		Reason:   string(customErr.Code),
		Domain:   ErrorDomain,
		Metadata: make(map[string]string),
	}
	var badRequest *errdetails.BadRequest
	var retry *errdetails.RetryInfo

	for k, v := range customErr.Meta {
		switch k {
		case metaValidation:
			if fields, ok := v.(map[string][]string); ok {
				badRequest = toBadRequest(fields)
				continue
			}
		case metaRetryable:
			if b, ok := v.(bool); ok && b {
				retry = &errdetails.RetryInfo{RetryDelay: durationpb.New(0)}
				continue
			}
		}
		info.Metadata[k] = fmt.Sprint(v)
	}

	details := []protoadapt.MessageV1{info}
	if badRequest != nil {
		details = append(details, badRequest)
	}
	if retry != nil {
		details = append(details, retry)
	}

	if withDetails, detailErr := st.WithDetails(details...); detailErr == nil {
		st = withDetails
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error back to an *Error, restoring the meta that
// ToGRPCError attached. Non-status errors are returned unchanged.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		switch d := detail.(type) {
		case *errdetails.ErrorInfo:
			for k, v := range d.GetMetadata() {
				customErr.WithMeta(k, v)
			}
		case *errdetails.BadRequest:
			customErr.WithMeta(metaValidation, fromBadRequest(d))
		case *errdetails.RetryInfo:
			customErr.WithMeta(metaRetryable, true)
		}
	}

	return customErr
}

// ValidationFields returns the per-field messages carried by a validation error
func ValidationFields(err error) (map[string][]string, bool) {
	fields, ok := GetMeta(err)[metaValidation].(map[string][]string)
	return fields, ok
}

func toBadRequest(fields map[string][]string) *errdetails.BadRequest {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	br := &errdetails.BadRequest{}
	for _, name := range names {
		for _, msg := range fields[name] {
			br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
				Field:       name,
				Description: msg,
			})
		}
	}
	return br
}

func fromBadRequest(br *errdetails.BadRequest) map[string][]string {
	fields := make(map[string][]string)
	for _, v := range br.GetFieldViolations() {
		fields[v.GetField()] = append(fields[v.GetField()], v.GetDescription())
	}
	return fields
}
