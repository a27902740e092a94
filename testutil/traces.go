// Package testutil provides shared trace fixtures for tests.
package testutil

import "github.com/HiImLuxifer/UML-Generator/model"

// TwoServiceTrace returns a minimal two-service trace: the frontend's
// Checkout span calling the cart service's "GET /cart" endpoint.
func TwoServiceTrace() *model.Trace {
	return &model.Trace{
		TraceID:    "trace-1",
		SourceName: "checkout",
		Spans: []*model.Span{
			{
				TraceID:       "trace-1",
				SpanID:        "s1",
				OperationName: "Checkout",
				StartTime:     1000,
				Duration:      5000,
				ProcessID:     "p1",
			},
			{
				TraceID:       "trace-1",
				SpanID:        "s2",
				OperationName: "GET /cart",
				StartTime:     1200,
				Duration:      1500,
				ProcessID:     "p2",
				References: []model.Reference{
					{RefType: model.ChildOf, TraceID: "trace-1", SpanID: "s1"},
				},
			},
		},
		Processes: map[string]*model.Process{
			"p1": {
				ServiceName: "frontend",
				Tags: model.Tags{
					"hostname": model.StringTag("node-1"),
				},
			},
			"p2": {
				ServiceName: "cartservice",
				Tags: model.Tags{
					"pod.name": model.StringTag("cartservice-7d5c8f9b8-xk7pt"),
				},
			},
		},
	}
}

// HipstershopTrace returns a three-service trace with gRPC operation
// names: frontend -> checkoutservice -> cartservice.
func HipstershopTrace() *model.Trace {
	return &model.Trace{
		TraceID:    "trace-2",
		SourceName: "place-order",
		Spans: []*model.Span{
			{
				TraceID:       "trace-2",
				SpanID:        "a1",
				OperationName: "POST /checkout",
				StartTime:     100,
				Duration:      90000,
				ProcessID:     "p1",
			},
			{
				TraceID:       "trace-2",
				SpanID:        "a2",
				OperationName: "hipstershop.CheckoutService/PlaceOrder",
				StartTime:     200,
				Duration:      80000,
				ProcessID:     "p2",
				References: []model.Reference{
					{RefType: model.ChildOf, TraceID: "trace-2", SpanID: "a1"},
				},
			},
			{
				TraceID:       "trace-2",
				SpanID:        "a3",
				OperationName: "hipstershop.CartService/EmptyCart",
				StartTime:     300,
				Duration:      7000,
				ProcessID:     "p3",
				References: []model.Reference{
					{RefType: model.ChildOf, TraceID: "trace-2", SpanID: "a2"},
				},
				Tags: model.Tags{
					"span.kind": model.StringTag("producer"),
				},
			},
		},
		Processes: map[string]*model.Process{
			"p1": {
				ServiceName: "frontend",
				Tags: model.Tags{
					"hostname": model.StringTag("node-1"),
				},
			},
			"p2": {
				ServiceName: "checkoutservice",
				Tags: model.Tags{
					"container.name": model.StringTag("checkoutservice-5f8b9c7d6"),
					"rpc.system":     model.StringTag("grpc"),
				},
			},
			"p3": {
				ServiceName: "cartservice",
				Tags: model.Tags{
					"pod.name": model.StringTag("cartservice-7d5c8f9b8-xk7pt"),
				},
			},
		},
	}
}
