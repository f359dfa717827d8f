// Package password 负责口令哈希与校验。
//
// 新口令一律使用 bcrypt，输入先经 SHA-256 十六进制预哈希（固定 64 字节），
// 因此任意长度的口令都能哈希，不受 bcrypt 72 字节上限影响。
// Verify 同时兼容旧系统写入的无盐 SHA-256 十六进制摘要，以便迁移过来的账号仍能登录。
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// legacyDigestLen 旧版 SHA-256 十六进制摘要长度
const legacyDigestLen = sha256.Size * 2

// Hash 生成口令摘要（bcrypt，自带随机盐）
// 预哈希后输入长度恒为 64 字节，错误只可能来自随机源
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(prehash(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify 校验口令是否与摘要匹配
func Verify(plain, digest string) bool {
	if isLegacyDigest(digest) {
		return subtle.ConstantTimeCompare(prehash(plain), []byte(digest)) == 1
	}
	err := bcrypt.CompareHashAndPassword([]byte(digest), prehash(plain))
	return err == nil
}

// prehash 口令的 SHA-256 十六进制形式，与旧版摘要格式相同
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	return []byte(hex.EncodeToString(sum[:]))
}

// NeedsRehash 判断摘要是否为旧格式
func NeedsRehash(digest string) bool {
	return isLegacyDigest(digest)
}

func isLegacyDigest(digest string) bool {
	if len(digest) != legacyDigestLen {
		return false
	}
	_, err := hex.DecodeString(digest)
	return err == nil
}
