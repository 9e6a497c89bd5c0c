package util

import (
	"github.com/rs/xid"
	snowflake "github.com/yockii/snowflake_ext"
)

var idGenerator *snowflake.Worker

// InitNode 初始化ID生成器
func InitNode(nodeID uint64) error {
	var err error
	idGenerator, err = snowflake.NewSnowflake(nodeID)
	if err != nil {
		return err
	}
	return nil
}

// NewID 生成新的ID
func NewID() uint64 {
	return idGenerator.NextId()
}

// NewKey 生成新的存储键，按时间有序且URL安全
func NewKey(prefix string) string {
	return prefix + xid.New().String()
}
