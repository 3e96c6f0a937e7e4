// Package proto holds the todokeeper.v1 messages and gRPC stubs generated
// from api/todokeeper/v1/todo.proto.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/todokeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/todokeeper todokeeper/v1/todo.proto
