package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	xConn *xgb.Conn
	xRoot xproto.Window
)

// InitX11 opens a connection to the X server for root-window pointer
// queries. The debug orbit camera uses this so it keeps tracking the
// pointer while the window is unfocused.
func InitX11() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	xConn = conn
	xRoot = xproto.Setup(conn).DefaultScreen(conn).Root
	return nil
}

// GlobalPointer returns the pointer position in root-window coordinates.
func GlobalPointer() (int, int, error) {
	if xConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(xConn, xRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}
