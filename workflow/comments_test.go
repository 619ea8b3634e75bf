package workflow

import (
	"errors"
	"testing"

	"github.com/atelierhq/design-portal/models"
)

func TestPostComment_SnapshotsRoleAndDesigner(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	image := createImage(t, db, designer, client)

	comment, err := svc.PostComment(image.ID, client.ID, "love the direction", nil)
	if err != nil {
		t.Fatalf("post comment failed: %v", err)
	}
	if comment.AuthorRole != models.RoleClient {
		t.Errorf("AuthorRole = %q, want CLIENT", comment.AuthorRole)
	}
	if comment.DesignerID != designer.ID {
		t.Errorf("DesignerID = %d, want %d", comment.DesignerID, designer.ID)
	}

	// Role changes after the fact must not rewrite the stored snapshot
	db.Model(&client).Update("role", models.RoleAdmin)
	var reloaded models.Comment
	if err := db.First(&reloaded, comment.ID).Error; err != nil {
		t.Fatalf("reload comment: %v", err)
	}
	if reloaded.AuthorRole != models.RoleClient {
		t.Errorf("AuthorRole after role change = %q, want CLIENT", reloaded.AuthorRole)
	}
}

func TestPostComment_EmptyContent(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	image := createImage(t, db, designer, client)

	_, err := svc.PostComment(image.ID, client.ID, "  ", nil)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestPostComment_ParentOnAnotherImage(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	imageA := createImage(t, db, designer, client)
	imageB := createImage(t, db, designer, client)

	parent, err := svc.PostComment(imageA.ID, client.ID, "thread on A", nil)
	if err != nil {
		t.Fatalf("post parent failed: %v", err)
	}

	_, err = svc.PostComment(imageB.ID, designer.ID, "reply on wrong image", &parent.ID)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	// No orphan row may exist
	var count int64
	db.Model(&models.Comment{}).Where("image_id = ?", imageB.ID).Count(&count)
	if count != 0 {
		t.Errorf("comments on image B = %d, want 0", count)
	}
}

func TestPendingCommentsForDesigner(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	otherDesigner := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	image := createImage(t, db, designer, client)
	otherImage := createImage(t, db, otherDesigner, client)

	unanswered, err := svc.PostComment(image.ID, client.ID, "is the font final?", nil)
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}
	answered, err := svc.PostComment(image.ID, client.ID, "can we try blue?", nil)
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}
	if _, err := svc.PostComment(image.ID, designer.ID, "sure, draft coming", &answered.ID); err != nil {
		t.Fatalf("post reply: %v", err)
	}
	// Comment for another designer must not leak into this queue
	if _, err := svc.PostComment(otherImage.ID, client.ID, "different project", nil); err != nil {
		t.Fatalf("post comment: %v", err)
	}

	pending, err := svc.PendingCommentsForDesigner(designer.ID)
	if err != nil {
		t.Fatalf("pending comments: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d comments, want 1", len(pending))
	}
	if pending[0].ID != unanswered.ID {
		t.Errorf("pending comment ID = %d, want %d", pending[0].ID, unanswered.ID)
	}
}

// A soft-deleted designer reply no longer counts as an answer.
func TestPendingCommentsForDesigner_DeletedReplyDoesNotAnswer(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	image := createImage(t, db, designer, client)

	top, err := svc.PostComment(image.ID, client.ID, "status update?", nil)
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}
	reply, err := svc.PostComment(image.ID, designer.ID, "shipping friday", &top.ID)
	if err != nil {
		t.Fatalf("post reply: %v", err)
	}

	pending, err := svc.PendingCommentsForDesigner(designer.ID)
	if err != nil {
		t.Fatalf("pending comments: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending with live reply = %d comments, want 0", len(pending))
	}

	if err := db.Model(&models.Comment{}).Where("id = ?", reply.ID).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("soft-delete reply: %v", err)
	}

	pending, err = svc.PendingCommentsForDesigner(designer.ID)
	if err != nil {
		t.Fatalf("pending comments: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != top.ID {
		t.Fatalf("pending after deleting reply = %v, want just the top-level comment", pending)
	}
}

// A designer reply excludes the thread no matter when it was inserted
// relative to other replies.
func TestPendingCommentsForDesigner_ClientReplyDoesNotAnswer(t *testing.T) {
	svc, db := newTestService(t)
	designer := createUser(t, db, models.RoleDesigner, false)
	client := createUser(t, db, models.RoleClient, true)
	image := createImage(t, db, designer, client)

	top, err := svc.PostComment(image.ID, client.ID, "thoughts?", nil)
	if err != nil {
		t.Fatalf("post comment: %v", err)
	}
	// Client replying to themselves leaves the thread unanswered
	if _, err := svc.PostComment(image.ID, client.ID, "bumping this", &top.ID); err != nil {
		t.Fatalf("post self-reply: %v", err)
	}

	pending, err := svc.PendingCommentsForDesigner(designer.ID)
	if err != nil {
		t.Fatalf("pending comments: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("pending = %d comments, want 1", len(pending))
	}

	if _, err := svc.PostComment(image.ID, designer.ID, "on it", &top.ID); err != nil {
		t.Fatalf("post designer reply: %v", err)
	}

	pending, err = svc.PendingCommentsForDesigner(designer.ID)
	if err != nil {
		t.Fatalf("pending comments: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("pending after designer reply = %d comments, want 0", len(pending))
	}
}
