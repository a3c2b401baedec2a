package uri

import "strings"

// UserInfo is a container for the userinfo URI component.
// An absent password is distinguished from an empty one.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(usrname string) UserInfo {
	return UserInfo{usrname: usrname}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{usrname: usrname, passwd: passwd, hasPasswd: true}
}

// ParseUserInfo splits a combined "user:password" string into a [UserInfo],
// cutting once on the first colon. Input without a colon yields a UserInfo
// with an absent password.
func ParseUserInfo[T ~string | ~[]byte](s T) UserInfo {
	if usrname, passwd, ok := strings.Cut(string(s), ":"); ok {
		return UserPassword(usrname, passwd)
	}
	return User(string(s))
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.usrname }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.passwd, ui.hasPasswd }

// String returns the string representation of the UserInfo.
func (ui UserInfo) String() string {
	if !ui.hasPasswd {
		return ui.usrname
	}
	return ui.usrname + ":" + ui.passwd
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsValid checks whether the UserInfo is syntactically valid.
func (ui UserInfo) IsValid() bool { return ui.usrname != "" }

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
